// Copyright 2019 Laszlo Fogas
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package ddl

const createTableUsers = "create-table-users"
const createTableJobConfigs = "create-table-job-configs"
const createTableBuilds = "create-table-builds"
const createIndexBuildsProjectNumber = "create-index-builds-project-number"

type migration struct {
	name string
	stmt string
}

var migrations = map[string][]migration{
	"sqlite": {
		{
			name: createTableUsers,
			stmt: `
CREATE TABLE IF NOT EXISTS users (
id           INTEGER PRIMARY KEY AUTOINCREMENT,
login         TEXT,
secret        TEXT,
admin         BOOLEAN,
UNIQUE(login)
);
`,
		},
		{
			name: createTableJobConfigs,
			stmt: `
CREATE TABLE IF NOT EXISTS job_configs (
id                    INTEGER PRIMARY KEY AUTOINCREMENT,
project               TEXT,
notify_aborted        BOOLEAN DEFAULT false,
notify_failure        BOOLEAN DEFAULT false,
notify_not_built      BOOLEAN DEFAULT false,
notify_back_to_normal BOOLEAN DEFAULT false,
notify_success        BOOLEAN DEFAULT false,
notify_unstable       BOOLEAN DEFAULT false,
mention_committers    BOOLEAN DEFAULT false,
mention_builders      BOOLEAN DEFAULT false,
room                  TEXT DEFAULT '',
UNIQUE(project)
);
`,
		},
		{
			name: createTableBuilds,
			stmt: `
CREATE TABLE IF NOT EXISTS builds (
id            TEXT,
project       TEXT,
number        INTEGER,
result        TEXT,
created       INTEGER,
UNIQUE(id)
);
`,
		},
		{
			name: createIndexBuildsProjectNumber,
			stmt: `CREATE UNIQUE INDEX IF NOT EXISTS builds_project_number ON builds (project, number);`,
		},
	},
	"postgres": {
		{
			name: createTableUsers,
			stmt: `
CREATE TABLE IF NOT EXISTS users (
id           SERIAL,
login         TEXT,
secret        TEXT,
admin         BOOLEAN,
UNIQUE(login)
);
`,
		},
		{
			name: createTableJobConfigs,
			stmt: `
CREATE TABLE IF NOT EXISTS job_configs (
id                    SERIAL,
project               TEXT,
notify_aborted        BOOLEAN DEFAULT false,
notify_failure        BOOLEAN DEFAULT false,
notify_not_built      BOOLEAN DEFAULT false,
notify_back_to_normal BOOLEAN DEFAULT false,
notify_success        BOOLEAN DEFAULT false,
notify_unstable       BOOLEAN DEFAULT false,
mention_committers    BOOLEAN DEFAULT false,
mention_builders      BOOLEAN DEFAULT false,
room                  TEXT DEFAULT '',
UNIQUE(project)
);
`,
		},
		{
			name: createTableBuilds,
			stmt: `
CREATE TABLE IF NOT EXISTS builds (
id            TEXT,
project       TEXT,
number        INTEGER,
result        TEXT,
created       INTEGER,
UNIQUE(id)
);
`,
		},
		{
			name: createIndexBuildsProjectNumber,
			stmt: `CREATE UNIQUE INDEX IF NOT EXISTS builds_project_number ON builds (project, number);`,
		},
	},
}
