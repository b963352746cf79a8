// Copyright © 2022 Meroxa, Inc.
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

package config

import (
	"fmt"

	"github.com/rs/zerolog"
)

const redacted = "********"

// MarshalZerologObject writes the parameters as log fields with the password masked.
func (c Connection) MarshalZerologObject(e *zerolog.Event) {
	e.Str(KeyAccount, c.Account).
		Str(KeyUser, c.User).
		Str(KeyPassword, mask(c.Password)).
		Str(KeyRole, c.Role).
		Str(KeyDatabase, c.Database).
		Str(KeySchema, c.Schema).
		Str(KeyWarehouse, c.Warehouse)
}

func (c Connection) String() string {
	return fmt.Sprintf(
		"account=%q user=%q password=%q role=%q database=%q schema=%q warehouse=%q",
		c.Account, c.User, mask(c.Password), c.Role, c.Database, c.Schema, c.Warehouse,
	)
}

// GoString keeps %#v from printing the password.
func (c Connection) GoString() string {
	return fmt.Sprintf(
		"config.Connection{Account:%q, User:%q, Password:%q, Role:%q, Database:%q, Schema:%q, Warehouse:%q}",
		c.Account, c.User, mask(c.Password), c.Role, c.Database, c.Schema, c.Warehouse,
	)
}

// mask hides a set password. A blank one stays blank so a missing value is visible.
func mask(s string) string {
	if s == "" {
		return ""
	}

	return redacted
}
