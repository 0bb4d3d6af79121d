/*
Package ports defines the driven ports (interfaces) for the DFA engine.

These interfaces decouple the core logic from external implementations, allowing
evaluation reports to be kept in various storage backends.

# Key Interfaces

  - ReportStore: Responsible for persisting and loading evaluation Reports.
*/
package ports
