package main

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/rgmsh/gmsh-go/pkg/gmsh"
)

// optionEntry is one engine option assignment from the config file:
//
//	options:
//	  - name: General.Verbosity
//	    value: 3
//	  - name: Solver.Name0
//	    value: GetDP
//
// Entries are a list rather than a map because viper lowercases map keys and
// engine option names are case sensitive.
type optionEntry struct {
	Name  string `mapstructure:"name"`
	Value any    `mapstructure:"value"`
}

// loadOptions reads the file named by --config and applies every options
// entry through the session's option registry. Numbers go through the
// numeric accessor, strings through the string one, so a typo'd option name
// surfaces as ErrUnknownOption instead of silently configuring nothing.
func loadOptions(sess *gmsh.Session) error {
	if flagConfig == "" {
		return nil
	}

	v := viper.New()
	v.SetConfigFile(flagConfig)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	var entries []optionEntry
	if err := v.UnmarshalKey("options", &entries); err != nil {
		return fmt.Errorf("parse options: %w", err)
	}

	for _, e := range entries {
		switch value := e.Value.(type) {
		case int:
			if err := sess.SetNumberOption(e.Name, float64(value)); err != nil {
				return err
			}
		case float64:
			if err := sess.SetNumberOption(e.Name, value); err != nil {
				return err
			}
		case string:
			if err := sess.SetStringOption(e.Name, value); err != nil {
				return err
			}
		default:
			return fmt.Errorf("option %q: unsupported value type %T", e.Name, e.Value)
		}
	}
	return nil
}
