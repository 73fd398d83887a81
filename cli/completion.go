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

package cli

import (
	"os"
	"path/filepath"
	"strings"

	spfcbr "github.com/spf13/cobra"
)

// AddCommandCompletion attaches a "completion" sub-command generating a
// shell completion script, carried over from the teacher's bootstrap as
// an ambient nicety unrelated to the probing engine itself.
func (a *App) AddCommandCompletion() {
	cmd := &spfcbr.Command{
		Use:     "completion <bash|zsh|fish|powershell> [file]",
		Example: a.name + " completion bash /etc/bash_completion.d/" + a.name,
		Short:   "Generate a shell completion script",
		Run: func(cmd *spfcbr.Command, args []string) {
			if len(args) < 1 {
				_ = cmd.Usage()
				os.Exit(1)
			}

			var out *os.File = os.Stdout
			if len(args) >= 2 {
				file := filepath.Clean(args[1])
				if err := os.MkdirAll(filepath.Dir(file), 0o755); err != nil {
					os.Exit(1)
				}
				f, err := os.Create(file)
				if err != nil {
					os.Exit(1)
				}
				defer f.Close()
				out = f
			}

			switch strings.ToLower(args[0]) {
			case "bash":
				_ = a.root.GenBashCompletionV2(out, true)
			case "zsh":
				_ = a.root.GenZshCompletion(out)
			case "fish":
				_ = a.root.GenFishCompletion(out, true)
			case "powershell":
				_ = a.root.GenPowerShellCompletionWithDesc(out)
			}
		},
	}
	a.root.AddCommand(cmd)
}
