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

// Package suites registers the built-in test cases against the registry
// package's global store and resolves each suite name to its fixture
// directory and default User-Agent string. Importing it (cmd/httptester
// does, and calls FixturesFor) is what populates the registry; the
// package exports nothing a test body needs directly.
package suites

var userAgents = map[string]string{
	"a1":   "httptester/1.0 (rfc2616-a1)",
	"core": "httptester/1.0 (core-scenarios)",
}

var fixtureDirs = map[string]string{
	"a1":   a1Dir,
	"core": coreDir,
}

// FixturesFor resolves suite to the directory its fixtures live in and the
// User-Agent its requests should carry. It is the function a runner.Runner
// is constructed with.
func FixturesFor(suite string) (dir string, userAgent string) {
	return fixtureDirs[suite], userAgents[suite]
}
