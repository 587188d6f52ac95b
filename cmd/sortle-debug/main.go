// Command sortle-debug is an interactive step debugger for Sortle
// programs: it renders the sorted expression list with the instruction
// pointer highlighted and lets the user single-step or run to completion.
package main

import (
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/graue/sortle/internal/debugger"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: sortle-debug <path>")
		os.Exit(1)
	}

	src, err := os.ReadFile(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(1)
	}

	sess, err := debugger.New(string(src))
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(1)
	}

	app := newDebugApp(sess)
	if err := app.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(1)
	}
}

type debugApp struct {
	sess   *debugger.Session
	app    *tview.Application
	list   *tview.List
	status *tview.TextView
	log    *tview.TextView
}

func newDebugApp(sess *debugger.Session) *tview.Application {
	d := &debugApp{
		sess:   sess,
		app:    tview.NewApplication(),
		list:   tview.NewList().ShowSecondaryText(false),
		status: tview.NewTextView().SetDynamicColors(true),
		log:    tview.NewTextView().SetDynamicColors(true).SetScrollable(true),
	}
	d.list.SetBorder(true).SetTitle(" program state ")
	d.status.SetBorder(true).SetTitle(" status ")
	d.log.SetBorder(true).SetTitle(" trace ")

	flex := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(d.status, 3, 0, false).
		AddItem(tview.NewFlex().
			AddItem(d.list, 0, 1, true).
			AddItem(d.log, 0, 1, false),
			0, 1, true)

	d.refresh()

	d.app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Rune() {
		case 's', ' ':
			d.step()
			return nil
		case 'r':
			d.runToHalt()
			return nil
		case 'q':
			d.app.Stop()
			return nil
		}
		if event.Key() == tcell.KeyCtrlC {
			d.app.Stop()
			return nil
		}
		return event
	})

	d.app.SetRoot(flex, true)
	return d.app
}

func (d *debugApp) step() {
	if d.sess.Halted() {
		return
	}
	trace, err := d.sess.StepOnce()
	if err != nil {
		fmt.Fprintf(d.log, "[red]error: %s[-]\n", err)
		d.refresh()
		return
	}
	switch {
	case trace.Deleted:
		fmt.Fprintf(d.log, "step %d: %s vanished (empty result)\n", d.sess.Steps, trace.RemovedName)
	case trace.Clobbered:
		fmt.Fprintf(d.log, "step %d: %s -> %s (clobbered existing)\n", d.sess.Steps, trace.RemovedName, trace.NewName)
	default:
		fmt.Fprintf(d.log, "step %d: %s -> %s\n", d.sess.Steps, trace.RemovedName, trace.NewName)
	}
	d.refresh()
}

func (d *debugApp) runToHalt() {
	for !d.sess.Halted() {
		if _, err := d.sess.StepOnce(); err != nil {
			fmt.Fprintf(d.log, "[red]error: %s[-]\n", err)
			break
		}
	}
	d.refresh()
}

func (d *debugApp) refresh() {
	d.list.Clear()
	for i := 0; i < d.sess.State.Len(); i++ {
		name := d.sess.State.At(i).Name
		if i == d.sess.IP && !d.sess.Halted() {
			name = "-> " + name
		}
		d.list.AddItem(name, "", 0, nil)
	}

	d.status.Clear()
	if d.sess.Halted() {
		fmt.Fprintf(d.status, "halted after %d step(s); result: [green]%s[-]\n", d.sess.Steps, d.sess.Result())
	} else {
		fmt.Fprintf(d.status, "step %d, ip=%d  |  (s)tep  (r)un  (q)uit\n", d.sess.Steps, d.sess.IP)
	}
}
