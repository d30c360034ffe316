/*
Package orm provides an easy to use db wrapper.

It breaks the state space into prefixed sections called buckets. Each
bucket contains only one type of entity and may own an ID sequence that
generates the primary keys. Entities are validated before being
persisted and loaded back through their binary representation.
*/
package orm
