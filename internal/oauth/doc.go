// Package oauth implements the Mollie OAuth2 authorization flow.
//
// Login runs the authorization-code flow with a short-lived local callback
// listener; the resulting token is persisted to a JSON file guarded by a
// file lock so concurrent invocations never race a refresh. TokenSource
// hands the API client a refreshing source that writes renewed tokens back
// to disk.
package oauth
