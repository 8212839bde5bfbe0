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

package sql

const SelectUserByLogin = "select-user-by-login"
const SelectAllUser = "select-all-user"
const DeleteUser = "deleteUser"
const SelectJobConfigByProject = "select-job-config-by-project"
const SelectJobConfigs = "select-job-configs"
const SelectBuild = "select-build"
const SelectPreviousBuild = "select-previous-build"
const SelectBuildsByProject = "select-builds-by-project"
const UpdateBuildResult = "update-build-result"

var queries = map[string]map[string]string{
	"sqlite": {
		SelectUserByLogin: `
SELECT id, login, secret, admin
FROM users
WHERE login = ?;
`,
		SelectAllUser: `
SELECT id, login, secret, admin
FROM users;
`,
		DeleteUser: `
DELETE FROM users where login = ?;
`,
		SelectJobConfigByProject: `
SELECT id, project, notify_aborted, notify_failure, notify_not_built, notify_back_to_normal, notify_success, notify_unstable, mention_committers, mention_builders, room
FROM job_configs
WHERE project = ?;
`,
		SelectJobConfigs: `
SELECT id, project, notify_aborted, notify_failure, notify_not_built, notify_back_to_normal, notify_success, notify_unstable, mention_committers, mention_builders, room
FROM job_configs
ORDER BY project;
`,
		SelectBuild: `
SELECT id, project, number, result, created
FROM builds
WHERE project = ? AND number = ?;
`,
		SelectPreviousBuild: `
SELECT id, project, number, result, created
FROM builds
WHERE project = ? AND number < ?
ORDER BY number DESC
LIMIT 1;
`,
		SelectBuildsByProject: `
SELECT id, project, number, result, created
FROM builds
WHERE project = ?
ORDER BY number DESC
LIMIT ?;
`,
		UpdateBuildResult: `
UPDATE builds SET result = ? WHERE id = ?;
`,
	},
	"postgres": {
		SelectUserByLogin: `
SELECT id, login, secret, admin
FROM users
WHERE login = $1;
`,
		SelectAllUser: `
SELECT id, login, secret, admin
FROM users;
`,
		DeleteUser: `
DELETE FROM users where login = $1;
`,
		SelectJobConfigByProject: `
SELECT id, project, notify_aborted, notify_failure, notify_not_built, notify_back_to_normal, notify_success, notify_unstable, mention_committers, mention_builders, room
FROM job_configs
WHERE project = $1;
`,
		SelectJobConfigs: `
SELECT id, project, notify_aborted, notify_failure, notify_not_built, notify_back_to_normal, notify_success, notify_unstable, mention_committers, mention_builders, room
FROM job_configs
ORDER BY project;
`,
		SelectBuild: `
SELECT id, project, number, result, created
FROM builds
WHERE project = $1 AND number = $2;
`,
		SelectPreviousBuild: `
SELECT id, project, number, result, created
FROM builds
WHERE project = $1 AND number < $2
ORDER BY number DESC
LIMIT 1;
`,
		SelectBuildsByProject: `
SELECT id, project, number, result, created
FROM builds
WHERE project = $1
ORDER BY number DESC
LIMIT $2;
`,
		UpdateBuildResult: `
UPDATE builds SET result = $1 WHERE id = $2;
`,
	},
}

// Stmt returns the named query for the given driver
func Stmt(driver, name string) string {
	return queries[driver][name]
}
