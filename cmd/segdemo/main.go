// segdemo runs a simulated 4-digit backpack from the command line:
// a clock face, a formatted float, or a raw message.
//
// segdemo -config={config file}
package main

import (
	"log"
	"os"
	"os/signal"

	"github.com/jonboulle/clockwork"
	"gopkg.in/natefinch/lumberjack.v2"

	"dscheirer.com/sevenseg/backpack"
	"dscheirer.com/sevenseg/clockface"
	"dscheirer.com/sevenseg/segment"
)

func setupLogging(s *settings) {
	logFile := s.GetString("logFile")
	if logFile == "" {
		return
	}
	log.SetOutput(&lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    10, // MB
		MaxBackups: 3,
	})
}

func main() {
	s := initSettings()
	setupLogging(s)
	s.Dump()

	disp := backpack.New(nil)
	disp.DebugDump(s.GetBool("debug_dump"))

	switch mode := s.GetString("mode"); mode {
	case "value":
		err := disp.FormatFloat(segment.First,
			s.GetFloat("value"), s.GetInt("fractionalDigits"), s.GetInt("base"))
		if err != nil {
			log.Fatal(err.Error())
		}
	case "text":
		if err := disp.Print(s.GetString("text")); err != nil {
			log.Fatal(err.Error())
		}
	case "clock":
		face := clockface.New(disp, clockwork.NewRealClock())
		face.SetBlink(s.GetBool("blinkTime"))
		face.SetMilitary(s.GetBool("military"))

		quit := make(chan struct{})
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt)
		go func() {
			<-sig
			close(quit)
		}()
		face.Run(quit)
	default:
		log.Fatalf("Unknown mode: %s", mode)
	}
}
