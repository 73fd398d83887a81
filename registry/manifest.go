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

package registry

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Manifest is an optional on-disk suite-to-fixtures mapping, for
// deployments that want to pin an explicit fixture directory and
// user-agent per suite instead of accepting the code-registered defaults.
// Entries are keyed by suite name; it carries no batch numbers.
type Manifest struct {
	Suites []SuiteEntry `yaml:"suites"`
}

// SuiteEntry pins one suite's fixture directory and user-agent template.
type SuiteEntry struct {
	Name      string `yaml:"name"`
	Fixtures  string `yaml:"fixtures"`
	UserAgent string `yaml:"user_agent"`
}

// LoadManifest reads and parses a YAML manifest file.
func LoadManifest(path string) (*Manifest, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var m Manifest
	if err := yaml.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// Lookup returns the SuiteEntry named name, if the manifest declares one.
func (m *Manifest) Lookup(name string) (SuiteEntry, bool) {
	if m == nil {
		return SuiteEntry{}, false
	}
	for _, e := range m.Suites {
		if e.Name == name {
			return e, true
		}
	}
	return SuiteEntry{}, false
}
