/*
Package diap defines the interfaces that tie the ledger core together:
transactions and messages, handlers and decorators, key-value storage,
execution context and the condition/address scheme used to derive
custodial account addresses.

Concrete functionality lives in subpackages. State access is provided by
orm buckets on top of the KVStore interfaces declared here, message
routing by the app package, and the business logic by the extensions
under x/.
*/
package diap
