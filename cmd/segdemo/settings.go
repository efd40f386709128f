package main

import (
	"flag"
	"fmt"
	"io/ioutil"
	"log"
	"strings"

	"github.com/buger/jsonparser"
)

// keep settings generic, type-convert on the fly
type settings struct {
	settings map[string]interface{}
}

func defaultSettings() *settings {
	s := make(map[string]interface{})

	// setting the type here makes the conversion "automatic" later
	s["mode"] = "clock" // clock, value or text
	s["value"] = 3.14
	s["fractionalDigits"] = int64(2)
	s["base"] = int64(10)
	s["text"] = "8.8.8.8."
	s["blinkTime"] = true
	s["military"] = false
	s["debug_dump"] = true
	s["logFile"] = "" // empty logs to stderr

	return &settings{settings: s}
}

func (s *settings) settingsFromJSON(data []byte) error {
	tmp := defaultSettings()
	for k, initVal := range tmp.settings {
		// ignore missing fields
		if _, _, _, err := jsonparser.Get(data, k); err != nil {
			continue
		}

		var err error
		switch initVal.(type) {
		case int64:
			s.settings[k], err = jsonparser.GetInt(data, k)
		case float64:
			s.settings[k], err = jsonparser.GetFloat(data, k)
		case bool:
			var bVal bool
			bVal, err = jsonparser.GetBoolean(data, k)
			if err != nil {
				// try true and false as strings
				str, _ := jsonparser.GetString(data, k)
				switch strings.ToLower(str) {
				case "true":
					bVal = true
				case "false":
					bVal = false
				default:
					return err
				}
				err = nil
			}
			s.settings[k] = bVal
		case string:
			s.settings[k], err = jsonparser.GetString(data, k)
		default:
			err = fmt.Errorf("Bad type: %T", initVal)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func initSettings() *settings {
	s := defaultSettings()

	configFile := flag.String("config", "", "config file path")
	flag.Parse()

	if *configFile == "" {
		return s
	}
	data, err := ioutil.ReadFile(*configFile)
	if err != nil {
		log.Fatalf("Could not load conf file '%s', terminating", *configFile)
	}
	log.Printf("Reading configuration from '%s'", *configFile)
	if err := s.settingsFromJSON(data); err != nil {
		log.Fatal(err.Error())
	}
	return s
}

func (s *settings) GetString(key string) string {
	switch v := s.settings[key].(type) {
	case string:
		return v
	default:
		return ""
	}
}

func (s *settings) GetBool(key string) bool {
	switch v := s.settings[key].(type) {
	case bool:
		return v
	default:
		return false
	}
}

func (s *settings) GetInt(key string) int {
	switch v := s.settings[key].(type) {
	case int64:
		return int(v)
	case int:
		return v
	default:
		return 0
	}
}

func (s *settings) GetFloat(key string) float64 {
	switch v := s.settings[key].(type) {
	case float64:
		return v
	default:
		return 0
	}
}

func (s *settings) Dump() {
	for k, v := range s.settings {
		log.Printf("%s : %T: %v\n", k, v, v)
	}
}
