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

// Package config holds the Snowflake connection parameters used by the lab.
package config

const (
	// KeyAccount is the account identifier key.
	KeyAccount = "account"

	// KeyUser is the login name key.
	KeyUser = "user"

	// KeyPassword is the login secret key.
	KeyPassword = "password"

	// KeyRole is the role assumed after login.
	KeyRole = "role"

	// KeyDatabase is the target database key.
	KeyDatabase = "database"

	// KeySchema is the target schema key.
	KeySchema = "schema"

	// KeyWarehouse is the compute warehouse key.
	KeyWarehouse = "warehouse"
)

// Keys returns every connection key in declaration order. Each call returns a new slice.
func Keys() []string {
	return []string{
		KeyAccount,
		KeyUser,
		KeyPassword,
		KeyRole,
		KeyDatabase,
		KeySchema,
		KeyWarehouse,
	}
}

// Connection represents the parameters needed to connect to Snowflake.
type Connection struct {
	// Account identifier, qualified by cloud platform and region where needed.
	// Detail information https://docs.snowflake.com/en/user-guide/admin-account-identifier.html#account-identifier-formats-by-cloud-platform-and-region
	Account string

	User     string
	Password string

	// Role assumed after login.
	Role string

	Database string
	Schema   string

	// Warehouse is the compute pool that runs queries.
	Warehouse string
}

// Default returns the connection parameters. Account, User and Password are
// left blank for the operator to fill in before use.
func Default() Connection {
	return Connection{
		Account:   "",
		User:      "",
		Password:  "",
		Role:      "ACCOUNTADMIN",
		Database:  "SCIKIT_LEARN",
		Schema:    "PUBLIC",
		Warehouse: "LAB_SCIKIT_WH",
	}
}

// Map returns the parameters keyed by name. The result always has every key in Keys().
func (c Connection) Map() map[string]string {
	return map[string]string{
		KeyAccount:   c.Account,
		KeyUser:      c.User,
		KeyPassword:  c.Password,
		KeyRole:      c.Role,
		KeyDatabase:  c.Database,
		KeySchema:    c.Schema,
		KeyWarehouse: c.Warehouse,
	}
}
