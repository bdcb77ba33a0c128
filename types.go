// Copyright 2025 Florian Zenker (flo@znkr.io)
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

package inlinediff

import "znkr.io/inlinediff/internal/jsonout"

// DiffType is the value of the "type" key of a record.
type DiffType = jsonout.DiffType

const (
	TypeContext         = jsonout.Context
	TypeChange          = jsonout.Change
	TypeMoveSource      = jsonout.MoveSource
	TypeMoveDestination = jsonout.MoveDestination
)

// HighlightType is the value of the "type" key of a highlight range.
type HighlightType = jsonout.HighlightType

const (
	HighlightAdd    = jsonout.Add
	HighlightDelete = jsonout.Delete
)

// LinkDirection is the value of the "linkDirection" key of a move.
type LinkDirection = jsonout.LinkDirection

const (
	LinkDown = jsonout.Down
	LinkUp   = jsonout.Up
)
