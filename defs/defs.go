package defs

type Tid_t int

// the thread table is append-only; slots of exited threads are never
// reclaimed, so MAXTHREADS bounds the total number of threads ever created
// during one run, not the number alive at once.
const MAXTHREADS = 64
