// Package integration runs the blog API end to end.
//
// TestMain starts the HTTP server once against the store named by
// TEST_DATABASE_URL (in-memory by default) and stops it when the suite ends.
// Every test seeds the store with generated posts before it runs and drops
// the whole store afterwards, so each test starts from a freshly seeded,
// otherwise empty database.
//
// By default the server logs are not included in the test output, you can enable them with:
//
//	ENABLE_SERVER_LOGS=true go test -v ./test/integration
package integration
