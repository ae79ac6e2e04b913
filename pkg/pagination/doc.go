// Package pagination provides index arithmetic for 1-based page navigation:
// translating a page number into an element range, computing the page count
// for a collection, and building the strip of page numbers shown around the
// current page.
//
//	start, end, _ := pagination.Range(2, 10)   // 10, 20
//	pages, _ := pagination.TotalPages(95, 10)  // 10
//	strip, _ := pagination.Window(5, 20, 6)    // [3 4 5 6 7 8]
//
// All functions validate their inputs and return ErrInvalidArgument for
// page numbers below one, non-positive page sizes or widths, and negative
// totals. The package holds no state and is safe for concurrent use.
package pagination
