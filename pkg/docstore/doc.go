// Package docstore abstracts the document database behind the two
// capabilities the entitlement engine actually needs: fetch one document by
// id and fetch many by equality filter.
//
// Platform clients (the mobile and web apps use different native SDKs) are
// adapted to the Store interface at the composition root; the engine never
// sees platform types. Two adapters ship with the package: MongoStore over
// the official Mongo driver and MemoryStore for tests and offline work.
//
// Documents are schemaless maps. The typed accessors (String, Bool, ID)
// tolerate missing or mistyped fields, because a malformed document must
// degrade a decision, never crash it.
package docstore
