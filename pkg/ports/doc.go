/*
Package ports defines the driven ports (interfaces) for the piece catalog.

These interfaces decouple the orientation logic from external implementations,
allowing the catalog to pull piece definitions from various backends.

# Key Interfaces

  - PieceSource: Responsible for listing piece names and resolving each one
    to its canonical shape (e.g., from the embedded catalog, a directory of
    YAML documents, or in-memory definitions).

The package also ships RunPieceSourceContract, a reusable test suite that
every PieceSource implementation is expected to pass.
*/
package ports
