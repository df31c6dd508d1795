// Command compasswm is the window manager daemon: it takes ownership
// of an X11 display and runs the event loop described in spec.md §4.5.
package main

import (
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/compasswm/compasswm/internal/manager"
	"github.com/compasswm/compasswm/internal/wmlog"
	"github.com/compasswm/compasswm/internal/x11"
)

func main() {
	display := flag.String("display", "", "X display to connect to (default: $DISPLAY)")
	logLevel := flag.String("log-level", "info", "log level: debug, info, warn, error")
	flag.Parse()

	log := wmlog.New(*logLevel)

	conn, err := x11.Dial(*display)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to X server")
	}
	defer conn.Close()

	m := manager.New(conn, log)
	if err := m.Bootstrap(); err != nil {
		log.Fatal().Err(err).Msg("bootstrap failed")
	}

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigs
		log.Info().Msg("received shutdown signal")
		m.Quit()
	}()

	if err := m.Run(); err != nil {
		log.Fatal().Err(err).Msg("event loop exited with error")
	}
}
