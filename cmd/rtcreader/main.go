package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"

	"github.com/kmalekinasab/webrtc-evaluation/src/rtcstats"
)

func main() {
	var file string
	var logLevel string
	flag.StringVar(&file, "file", "webrtc_internals.json", "Path to webrtc-internals JSON export")
	flag.StringVar(&logLevel, "loglevel", "info", "Log level: debug, info, warn, error")
	flag.Parse()
	rtcstats.SetLogLevel(logLevel)

	metrics, err := rtcstats.GatherMetrics(file, rtcstats.DefaultStyleRules())
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	if fi, serr := os.Stat(file); serr == nil {
		fmt.Printf("%s: %s, %d matching metric(s)\n", file, humanize.Bytes(uint64(fi.Size())), len(metrics))
	}
	if len(metrics) == 0 {
		fmt.Println("No matching metrics found.")
		return
	}
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Metric", "Average", "Samples"})
	for _, m := range metrics {
		table.Append([]string{
			m.Title,
			fmt.Sprintf("%.2f %s", m.Average, m.Unit),
			fmt.Sprintf("%d", len(m.Values)),
		})
	}
	table.Render()
}
