package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	fyne "fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/kmalekinasab/webrtc-evaluation/src/render"
	"github.com/kmalekinasab/webrtc-evaluation/src/rtcstats"
)

type uiState struct {
	app     fyne.App
	window  fyne.Window
	metrics []rtcstats.Metric
	charts  []*canvas.Image
}

func main() {
	var file string
	var logLevel string
	flag.StringVar(&file, "file", "webrtc_internals.json", "Path to webrtc-internals JSON export")
	flag.StringVar(&logLevel, "loglevel", "info", "Log level: debug, info, warn, error")
	flag.Parse()
	rtcstats.SetLogLevel(logLevel)

	metrics, err := rtcstats.GatherMetrics(file, rtcstats.DefaultStyleRules())
	if err != nil {
		rtcstats.Errorf("%v", err)
		os.Exit(1)
	}
	if len(metrics) == 0 {
		// Expected when the export holds no chartable metrics; no windows.
		rtcstats.Infof("no matching metrics found in %s", file)
		return
	}
	rtcstats.Infof("loaded %d metric(s) from %s", len(metrics), file)

	a := app.NewWithID("com.kmalekinasab.rtcviewer")
	state := &uiState{app: a, metrics: metrics}
	state.window = a.NewWindow("WebRTC Stats: " + filepath.Base(file))

	cw, chh := render.ChartSize(1100)
	objects := make([]fyne.CanvasObject, 0, len(metrics)*2)
	for i, m := range metrics {
		img := canvas.NewImageFromImage(render.MetricChart(m, cw, chh, i == len(metrics)-1))
		img.FillMode = canvas.ImageFillContain
		img.SetMinSize(fyne.NewSize(float32(cw), float32(chh)))
		state.charts = append(state.charts, img)
		objects = append(objects, img)
		if i < len(metrics)-1 {
			objects = append(objects, widget.NewSeparator())
		}
	}
	chartsScroll := container.NewVScroll(container.NewVBox(objects...))
	chartsScroll.SetMinSize(fyne.NewSize(float32(cw), 700))
	state.window.SetContent(chartsScroll)
	state.window.Resize(fyne.NewSize(1140, 800))

	sum := a.NewWindow("Summary Statistics")
	sum.SetContent(summaryTable(metrics))
	sum.Resize(fyne.NewSize(480, float32(40*(len(metrics)+1)+40)))
	sum.Show()

	// Re-render chart images when the window width changes so the time axis
	// uses the full width.
	if state.window.Canvas() != nil {
		prevW := int(state.window.Canvas().Size().Width)
		done := make(chan struct{})
		state.window.SetOnClosed(func() { close(done) })
		go func() {
			t := time.NewTicker(300 * time.Millisecond)
			defer t.Stop()
			for {
				select {
				case <-done:
					return
				case <-t.C:
					c := state.window.Canvas()
					if c == nil {
						continue
					}
					curW := int(c.Size().Width)
					if curW != prevW {
						prevW = curW
						fyne.Do(func() { redrawCharts(state) })
					}
				}
			}
		}()
	}

	state.window.ShowAndRun()
}

func redrawCharts(state *uiState) {
	if state.window == nil || state.window.Canvas() == nil {
		return
	}
	cw, chh := render.ChartSize(int(state.window.Canvas().Size().Width*0.95) - 12)
	for i, img := range state.charts {
		img.Image = render.MetricChart(state.metrics[i], cw, chh, i == len(state.metrics)-1)
		img.SetMinSize(fyne.NewSize(float32(cw), float32(chh)))
		img.Refresh()
	}
}

// summaryTable builds the two-column averages table: one row per metric plus a
// header row.
func summaryTable(metrics []rtcstats.Metric) fyne.CanvasObject {
	table := widget.NewTable(
		func() (int, int) { return len(metrics) + 1, 2 },
		func() fyne.CanvasObject { return widget.NewLabel("") },
		func(id widget.TableCellID, o fyne.CanvasObject) {
			lbl := o.(*widget.Label)
			if id.Row == 0 {
				lbl.TextStyle = fyne.TextStyle{Bold: true}
				if id.Col == 0 {
					lbl.SetText("Metric")
				} else {
					lbl.SetText("Average")
				}
				return
			}
			lbl.TextStyle = fyne.TextStyle{}
			m := metrics[id.Row-1]
			if id.Col == 0 {
				lbl.SetText(m.Title)
			} else {
				lbl.SetText(fmt.Sprintf("%.2f %s", m.Average, m.Unit))
			}
		},
	)
	table.SetColumnWidth(0, 280)
	table.SetColumnWidth(1, 160)
	return table
}
