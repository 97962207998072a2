/*
Package catalog supplies candidate reference data.

The voting core treats the catalog as an external collaborator: it only ever
resolves IDs and reads display fields. The shipped implementation is a
static slate; swapping in a database-backed catalog only requires satisfying
the Catalog interface.
*/
package catalog
