// Package stopwatch provides a simple stopwatch for measuring elapsed time.
//
// A StopWatch accumulates elapsed time across Start/Stop cycles using the
// monotonic clock, so wall-clock adjustments never skew a measurement.
// Reading Elapsed while the watch runs includes the in-progress interval.
//
//	sw := stopwatch.StartNew()
//	doWork()
//	sw.Stop()
//	fmt.Println(sw.Elapsed())
//
// Start on a running watch and Stop on a stopped one are no-ops, so sloppy
// call sequences never corrupt the accumulated total.
//
// A StopWatch is a plain value with no internal locking; share one between
// goroutines only with external synchronization.
package stopwatch
