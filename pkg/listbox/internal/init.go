// Package internal contains infrastructure shared by the list box core and
// its hosts: logging, the order-maintaining sequence behind the child
// registry, a small LRU cache and held-button repeat timing.
// Types and functions in this package are not part of the public API.
package internal
