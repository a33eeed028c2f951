// Copyright 2026 Blink Labs Software
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

package ledger

import (
	"errors"
	"fmt"
)

// NilArgumentError indicates a required argument was nil
type NilArgumentError struct {
	Function string
	Argument string
}

func (e NilArgumentError) Error() string {
	return fmt.Sprintf(
		"%s: required argument %s is nil",
		e.Function,
		e.Argument,
	)
}

// Sentinel error for nil arguments so callers can use errors.Is
var ErrNilArgument = errors.New("nil argument")

func (NilArgumentError) Is(target error) bool {
	return target == ErrNilArgument
}
