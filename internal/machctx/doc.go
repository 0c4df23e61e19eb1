package machctx

// Build-tag split between two machine-context backends:
//
//   - default build (no tags): context.go, the goroutine+channel
//     rendezvous above. Always compiles, always safe, always what the
//     rest of this module uses and what the test suite exercises.
//   - `-tags gocoro_asm`: context_asm_amd64.s plus the corresponding Go
//     declarations, a literal register/stack-pointer swap. It is not
//     wired into Scheduler, is not built by default, and is not
//     exercised by any test in this module — see DESIGN.md for why it
//     is kept unverified-by-construction rather than deleted.
