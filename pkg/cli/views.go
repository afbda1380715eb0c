// Copyright (c) 2025, Zilly Inc.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cli

import (
	"github.com/zillyinc/tellus-client-version/pkg/clientversion"
	"github.com/zillyinc/tellus-client-version/pkg/gate"
)

// headerRows renders the header table.
type headerRows []clientversion.HeaderBinding

func (h headerRows) TableHeader() []string {
	return []string{"APP", "PLATFORM", "HEADER"}
}

func (h headerRows) TableRows() [][]string {
	rows := make([][]string, 0, len(h))
	for _, b := range h {
		rows = append(rows, []string{string(b.App), string(b.Platform), b.Header})
	}
	return rows
}

// recordView is the printable form of a clientversion.Record.
type recordView struct {
	App      string `json:"app" yaml:"app"`
	Platform string `json:"platform" yaml:"platform"`
	Version  string `json:"version" yaml:"version"`
	Label    string `json:"label" yaml:"label"`
	Blank    bool   `json:"blank" yaml:"blank"`
}

func newRecordView(r clientversion.Record) recordView {
	return recordView{
		App:      string(r.App()),
		Platform: string(r.Platform()),
		Version:  r.Version(),
		Label:    r.FriendlyLabel(),
		Blank:    r.IsBlank(),
	}
}

// compareResult is the output of the compare command.
type compareResult struct {
	A               string `json:"a" yaml:"a"`
	B               string `json:"b" yaml:"b"`
	NormalizedA     string `json:"normalizedA" yaml:"normalizedA"`
	NormalizedB     string `json:"normalizedB" yaml:"normalizedB"`
	Compare         int    `json:"compare" yaml:"compare"`
	LessThan        bool   `json:"lessThan" yaml:"lessThan"`
	LessThanOrEqual bool   `json:"lessThanOrEqual" yaml:"lessThanOrEqual"`
	Equal           bool   `json:"equal" yaml:"equal"`
}

// clientResult is the output of the client command.
type clientResult struct {
	Client          recordView `json:"client" yaml:"client"`
	Against         string     `json:"against,omitempty" yaml:"against,omitempty"`
	LessThan        *bool      `json:"lessThan,omitempty" yaml:"lessThan,omitempty"`
	LessThanOrEqual *bool      `json:"lessThanOrEqual,omitempty" yaml:"lessThanOrEqual,omitempty"`
	Requirement     string     `json:"requirement,omitempty" yaml:"requirement,omitempty"`
	Matches         *bool      `json:"matches,omitempty" yaml:"matches,omitempty"`
}

// gateSummary is the output of gates validate.
type gateSummary struct {
	File     string   `json:"file" yaml:"file"`
	Valid    bool     `json:"valid" yaml:"valid"`
	Features []string `json:"features" yaml:"features"`
}

// decisionRows renders gate decisions.
type decisionRows []gate.Decision

func (d decisionRows) TableHeader() []string {
	return []string{"FEATURE", "ENABLED", "REQUIREMENT", "REASON"}
}

func (d decisionRows) TableRows() [][]string {
	rows := make([][]string, 0, len(d))
	for _, dec := range d {
		enabled := "false"
		if dec.Enabled {
			enabled = "true"
		}
		req := dec.Requirement
		if req == "" {
			req = "-"
		}
		rows = append(rows, []string{dec.Feature, enabled, req, dec.Reason})
	}
	return rows
}
