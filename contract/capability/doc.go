/*
Package capability declares the behavior contracts this library provides indirection
over. Contracts are purely structural: they carry no state, produce no side effects of
their own, and never name an implementing type. Side effects and failure semantics
belong to implementations.
*/
package capability
