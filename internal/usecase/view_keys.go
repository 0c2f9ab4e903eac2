package usecase

import "fmt"

// Cached derived views all live under one key prefix so a snapshot refresh
// can invalidate them in a single pass.
const viewKeyPrefix = "view:"

func teamRecordKey(teamID int64) string {
	return fmt.Sprintf("%srecord:%d", viewKeyPrefix, teamID)
}

func viewKey(name string) string {
	return viewKeyPrefix + name
}

func viewKeyN(name string, n int) string {
	return fmt.Sprintf("%s%s:%d", viewKeyPrefix, name, n)
}
