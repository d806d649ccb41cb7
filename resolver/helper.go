/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package resolver

import (
	"unicode/utf8"

	"dirpx.dev/tpx/apis"
	"dirpx.dev/tpx/config"
	"dirpx.dev/tpx/utils/split"
)

// helper is the per-call apis.Helper. It is created for one parse and
// dropped when the parser returns.
type helper struct {
	c     *chain
	t     apis.Type
	depth int
}

// Ensure helper implements apis.Helper.
var _ apis.Helper = (*helper)(nil)

func (h *helper) Type() apis.Type { return h.t }

func (h *helper) Args() []apis.Type { return h.t.Args() }

func (h *helper) Config() apis.Config { return h.c.cfg }

// Parse re-enters the full resolver one level deeper, so static overrides
// for element types apply at every depth.
func (h *helper) Parse(input string, t apis.Type) (any, error) {
	return h.c.parse(input, t, h.depth+1)
}

func (h *helper) Split(input string) []string {
	if h.c.split != nil {
		return h.c.split(input, h)
	}
	sep, _ := utf8.DecodeRuneInString(h.c.cfg.ListSeparator)
	if h.c.cfg.ListSeparator == "" {
		sep, _ = utf8.DecodeRuneInString(config.DefaultListSeparator)
	}
	return split.List(input, sep)
}

func (h *helper) SplitKeyValue(input string) (key, value string, ok bool) {
	if h.c.kv != nil {
		return h.c.kv(input, h)
	}
	sep := h.c.cfg.KeyValueSeparator
	if sep == "" {
		sep = config.DefaultKeyValueSeparator
	}
	return split.KeyValue(input, sep)
}
