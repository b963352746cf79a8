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
	"github.com/go-errors/errors"
	"github.com/snowflakedb/gosnowflake"
)

// DriverConfig returns a new gosnowflake config carrying the connection parameters as-is.
func (c Connection) DriverConfig() *gosnowflake.Config {
	return &gosnowflake.Config{
		Account:   c.Account,
		User:      c.User,
		Password:  c.Password,
		Role:      c.Role,
		Database:  c.Database,
		Schema:    c.Schema,
		Warehouse: c.Warehouse,
	}
}

// DSN renders the connection string accepted by sql.Open("snowflake", ...).
// Blank values are reported by the driver, not here.
func (c Connection) DSN() (string, error) {
	dsn, err := gosnowflake.DSN(c.DriverConfig())
	if err != nil {
		return "", errors.Errorf("build dsn: %w", err)
	}

	return dsn, nil
}
