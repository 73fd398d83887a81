/*
 * MIT License
 *
 * Copyright (c) 2024 Nicolas JUHEL
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 *
 */

// Package config is the flat, viper-backed configuration surface consumed
// by the CLI's run and serve commands; the service package itself does not
// read it. The core engine itself
// takes its parameters as explicit arguments and never reads this package,
// per the design's "environment inputs: none required by the core" rule.
package config

import (
	"os"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"

	"github.com/sabouaram/httptester/duration"
)

// Config is the merged view of defaults, a config file, environment
// variables and flags.
type Config struct {
	Host          string            `mapstructure:"host"`
	Port          string            `mapstructure:"port"`
	FixturesDir   string            `mapstructure:"fixtures_dir"`
	Suites        []string          `mapstructure:"suites"`
	LogLevel      string            `mapstructure:"log_level"`
	ConnectTO     duration.Duration `mapstructure:"connect_timeout"`
	SendTO        duration.Duration `mapstructure:"send_timeout"`
	FirstByteTO   duration.Duration `mapstructure:"first_byte_timeout"`
	InterByteTO   duration.Duration `mapstructure:"inter_byte_timeout"`
	LifetimeTO    duration.Duration `mapstructure:"lifetime_timeout"`
	ServicePort   string            `mapstructure:"service_port"`
	MetricsEnable bool              `mapstructure:"metrics_enable"`
}

// Default returns the configuration's zero-config defaults: localhost:80,
// the tiered timeouts from transport.DefaultConfig expressed as strings,
// and an info log level.
func Default() Config {
	return Config{
		Host:          "localhost",
		Port:          "80",
		FixturesDir:   "./fixtures",
		LogLevel:      "info",
		ConnectTO:     duration.MustParse("200ms"),
		SendTO:        duration.MustParse("3s"),
		FirstByteTO:   duration.MustParse("1s"),
		InterByteTO:   duration.MustParse("500ms"),
		LifetimeTO:    duration.MustParse("5s"),
		ServicePort:   "8088",
		MetricsEnable: false,
	}
}

// Load builds a Config from defaults, an optional file at path (if
// non-empty and present), HTTPTESTER_-prefixed environment variables, and
// the given flag overrides, in that ascending precedence order.
func Load(path string, flags map[string]interface{}) (Config, error) {
	v := viper.New()

	def := Default()
	defMap := map[string]interface{}{}
	if err := mapstructure.Decode(def, &defMap); err != nil {
		return Config{}, err
	}
	for k, val := range defMap {
		v.SetDefault(k, val)
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok && !os.IsNotExist(err) {
				return Config{}, err
			}
		}
	}

	v.SetEnvPrefix("HTTPTESTER")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	for k, val := range flags {
		v.Set(k, val)
	}

	var out Config
	decodeHook := mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.TextUnmarshallerHookFunc(),
	)
	if err := v.Unmarshal(&out, viper.DecodeHook(decodeHook)); err != nil {
		return Config{}, err
	}
	return out, nil
}
