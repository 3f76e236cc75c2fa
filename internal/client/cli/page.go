package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"

	"github.com/dmitrijs2005/ipms/internal/client/client"
	"github.com/dmitrijs2005/ipms/internal/client/export"
	"github.com/dmitrijs2005/ipms/internal/client/form"
	"github.com/dmitrijs2005/ipms/internal/client/table"
	"github.com/dmitrijs2005/ipms/internal/common"
)

// command is a page-specific handler. args are the words after the command.
type command struct {
	usage string
	run   func(ctx context.Context, args []string)
}

// page is the sub-REPL behind every table screen. The zero values of the
// optional fields switch the matching commands off.
type page[T any] struct {
	app  *App
	name string
	// singular names one row in success messages, e.g. "Item".
	singular string

	ctrl   *table.Controller[T]
	view   table.View[T]
	rowKey func(T) string

	// res backs the default save and delete. Without it delete is off.
	res *client.Resource[T]

	dialog  *form.Dialog[T]
	noEdit  bool
	save    form.SaveFunc[T]
	saved   func(verb string) string
	prepare func(ctx context.Context)
	// confirmDelete asks before removing a row.
	confirmDelete bool

	// formats lists the accepted export formats; exporter produces the file.
	formats  []string
	exporter func(ctx context.Context, format string) (client.Blob, error)
	// exportLabel prefixes the export success message, e.g. "Orders ".
	exportLabel string

	// enter runs once the first load was started; the returned func runs on
	// leave.
	enter func(ctx context.Context) func()

	extras map[string]command

	mu       sync.Mutex
	rendered bool
	lastGen  uint64
}

// init wires rendering. A state is printed once per completed load.
func (p *page[T]) init() {
	if p.rowKey == nil {
		p.rowKey = func(v T) string {
			if k, ok := any(v).(interface{ RowKey() string }); ok {
				return k.RowKey()
			}
			return ""
		}
	}
	p.ctrl.OnChange(func(s table.State[T]) {
		if s.Loading {
			return
		}
		p.mu.Lock()
		if p.rendered && s.Generation == p.lastGen {
			p.mu.Unlock()
			return
		}
		p.rendered = true
		p.lastGen = s.Generation
		p.mu.Unlock()
		p.render(s)
	})
}

func (p *page[T]) render(s table.State[T]) {
	p.app.write(func(w io.Writer) error {
		return p.view.Render(w, s)
	})
}

// run shows the page until the user goes back. It reports whether the user
// asked to quit the program.
func (p *page[T]) run(ctx context.Context) bool {
	p.init()
	pageCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	defer p.ctrl.Close()

	_ = p.ctrl.Refresh(pageCtx)
	if p.enter != nil {
		if leave := p.enter(pageCtx); leave != nil {
			defer leave()
		}
	}

	for {
		if ctx.Err() != nil {
			return true
		}
		p.app.say("ipms %s %s> ", p.app.getStatus(), p.name)
		line, err := readLine(p.app.reader)
		if err != nil {
			return true
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := strings.ToLower(parts[0]), parts[1:]

		switch cmd {
		case "back":
			return false
		case "exit", "quit":
			return true
		case "help":
			p.help()
		case "list", "ls":
			p.render(p.ctrl.Snapshot())
		case "refresh":
			_ = p.ctrl.Refresh(pageCtx)
		case "filter":
			p.filter(pageCtx, args)
		case "clear":
			_ = p.ctrl.ClearFilters(pageCtx)
		case "add":
			p.add(pageCtx)
		case "edit":
			p.edit(pageCtx, args)
		case "delete", "rm":
			p.remove(pageCtx, args)
		case "export":
			p.export(ctx, args)
		default:
			c, ok := p.extras[cmd]
			if !ok {
				p.app.say("Unknown command: %s (type 'help')", cmd)
				continue
			}
			c.run(pageCtx, args)
		}
	}
}

func (p *page[T]) help() {
	if p.view.Actions != "" {
		p.app.say("Commands: %s", p.view.Actions)
	}
	if len(p.extras) > 0 {
		names := make([]string, 0, len(p.extras))
		for name := range p.extras {
			names = append(names, name)
		}
		sort.Strings(names)
		usages := make([]string, 0, len(names))
		for _, name := range names {
			usages = append(usages, p.extras[name].usage)
		}
		p.app.say("Page commands: %s", strings.Join(usages, " | "))
	}
	if keys := p.ctrl.Endpoint().FilterKeys; len(keys) > 0 {
		p.app.say("Filters: %s", strings.Join(keys, ", "))
	}
	p.app.say("Always: list | refresh | help | back | exit")
}

func (p *page[T]) filter(ctx context.Context, args []string) {
	if len(args) == 0 {
		p.app.say("Usage: filter <%s> [value]", strings.Join(p.ctrl.Endpoint().FilterKeys, "|"))
		return
	}
	if err := p.ctrl.SetFilter(ctx, strings.ToLower(args[0]), strings.Join(args[1:], " ")); err != nil {
		p.app.sayErr(err)
	}
}

// find returns the row with the given key from the rows on screen.
func (p *page[T]) find(args []string, usage string) (T, bool) {
	var zero T
	if len(args) != 1 {
		p.app.say("Usage: %s", usage)
		return zero, false
	}
	for _, row := range p.ctrl.Snapshot().Rows {
		if p.rowKey(row) == args[0] {
			return row, true
		}
	}
	p.app.say("No %s with ID %s in the current list.", strings.ToLower(p.singular), args[0])
	return zero, false
}

// mutate runs fn and refetches. ok is printed as soon as fn succeeds so it
// comes before the refreshed table; a failed refetch is shown by the table
// banner, not reported as a failure of fn.
func (p *page[T]) mutate(ctx context.Context, ok string, fn func(ctx context.Context) error) error {
	done := false
	err := p.ctrl.Mutate(ctx, func(ctx context.Context) error {
		if err := fn(ctx); err != nil {
			return err
		}
		done = true
		if ok != "" {
			p.app.sayOK(ok)
		}
		return nil
	})
	if done {
		return nil
	}
	p.app.sayErr(err)
	return err
}

func (p *page[T]) add(ctx context.Context) {
	if p.dialog == nil {
		p.app.say("Adding is not available here.")
		return
	}
	p.dialog.Open(nil)
	p.fill(ctx, "added")
}

func (p *page[T]) edit(ctx context.Context, args []string) {
	if p.dialog == nil || p.noEdit {
		p.app.say("Editing is not available here.")
		return
	}
	row, ok := p.find(args, "edit <id>")
	if !ok {
		return
	}
	p.dialog.Open(&row)
	p.fill(ctx, "updated")
}

// fill walks the open dialog's fields and submits. A failed save keeps the
// draft so the user can correct it and retry.
func (p *page[T]) fill(ctx context.Context, verb string) {
	if p.prepare != nil {
		p.prepare(ctx)
	}
	msg := p.singular + " " + verb + " successfully."
	if p.saved != nil {
		msg = p.saved(verb)
	}
	save := p.save
	if save == nil {
		save = p.defaultSave
	}

	for {
		if err := p.promptFields(); err != nil {
			p.dialog.Cancel()
			p.app.say("Cancelled.")
			return
		}
		err := p.mutate(ctx, msg, func(ctx context.Context) error {
			return p.dialog.Submit(ctx, save)
		})
		if err == nil {
			return
		}
		again, rerr := Confirm(p.app.reader, "Edit and retry?", p.app.console())
		if rerr != nil || !again {
			p.dialog.Cancel()
			return
		}
	}
}

func (p *page[T]) promptFields() error {
	for _, f := range p.dialog.Spec().Fields {
		for {
			draft, ok := p.dialog.Draft()
			if !ok {
				return common.ErrDialogClosed
			}
			label := f.Label
			if f.Required {
				label += "*"
			}
			value, keep, err := GetFieldValue(p.app.reader, label, f.Get(draft), f.Options, p.app.console())
			if err != nil {
				return err
			}
			if keep {
				break
			}
			if err := p.dialog.Set(f.Name, value); err != nil {
				p.app.sayErr(err)
				continue
			}
			break
		}
	}
	return nil
}

func (p *page[T]) defaultSave(ctx context.Context, draft T, editing bool) error {
	if editing {
		_, err := p.res.Update(ctx, p.rowKey(draft), draft)
		return err
	}
	_, err := p.res.Create(ctx, draft)
	return err
}

func (p *page[T]) remove(ctx context.Context, args []string) {
	if p.res == nil {
		p.app.say("Deleting is not available here.")
		return
	}
	row, ok := p.find(args, "delete <id>")
	if !ok {
		return
	}
	key := p.rowKey(row)
	if p.confirmDelete {
		yes, err := Confirm(p.app.reader, fmt.Sprintf("Delete %s %s?", strings.ToLower(p.singular), key), p.app.console())
		if err != nil || !yes {
			return
		}
	}
	_ = p.mutate(ctx, p.singular+" deleted successfully.", func(ctx context.Context) error {
		return p.res.Remove(ctx, key)
	})
}

// export saves the file in the background. ctx is the app context, so an
// export outlives the page it was started from.
func (p *page[T]) export(ctx context.Context, args []string) {
	if p.exporter == nil {
		p.app.say("Export is not available here.")
		return
	}
	if len(args) != 1 || !contains(p.formats, strings.ToLower(args[0])) {
		p.app.say("Usage: export <%s>", strings.Join(p.formats, "|"))
		return
	}
	format := strings.ToLower(args[0])
	p.app.startExport(ctx, p.name+"/"+format, p.exportLabel+strings.ToUpper(format), "", func(ctx context.Context) (client.Blob, error) {
		return p.exporter(ctx, format)
	})
}

// startExport runs fetch through the app's export trigger in the
// background and reports the result as "<label> exported successfully."
// with the saved location. failMsg, when set, replaces the banner of a
// non-2xx response.
func (a *App) startExport(ctx context.Context, key, label, failMsg string, fetch export.FetchFunc) {
	a.bg.Add(1)
	err := a.exports.Go(ctx, key, fetch, func(loc string, err error) {
		defer a.bg.Done()
		if err != nil {
			a.log.Warn(ctx, "export failed", "key", key, "error", err)
			var re *client.RequestError
			if failMsg != "" && errors.As(err, &re) {
				a.say("%s", table.Paint("! "+failMsg, table.ToneError, a.config.Color))
				return
			}
			a.sayErr(err)
			return
		}
		a.sayOK(fmt.Sprintf("%s exported successfully. Saved to %s", label, loc))
	})
	if err != nil {
		a.bg.Done()
		a.sayErr(err)
	}
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
