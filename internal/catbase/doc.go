// Package catbase is the HTTP client for the remote cat collection.
//
// The store is a Firebase-style REST document store exposing exactly two
// operations clowder cares about:
//
//	GET  <base>/<collection>.json?auth=<token>       list every record
//	PUT  <base>/<collection>/<id>.json?auth=<token>  replace one record
//
// The collection response is a JSON object mapping entry identifier to
// {name, img, clicks}; the identifier becomes the cat's RemoteID and is
// what addresses the replace operation. Bodies never carry the identifier.
//
// Failures are classified into the Error kinds in errors.go (bad URL,
// timeout, network, bad status, bad body). The client never retries;
// recovery is the user's reload, driven by the state machine in
// internal/cats.
package catbase
