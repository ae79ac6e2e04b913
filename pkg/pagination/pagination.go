package pagination

import "fmt"

// Range translates a 1-based page number and page size into the half-open
// element index range [start, end) for that page. Page 1 with size 10 covers
// elements 0 through 9.
func Range(page, size int) (start, end int, err error) {
	if page < 1 {
		return 0, 0, fmt.Errorf("%w: page %d is below one", ErrInvalidArgument, page)
	}
	if size < 1 {
		return 0, 0, fmt.Errorf("%w: page size %d is not positive", ErrInvalidArgument, size)
	}
	return (page - 1) * size, page * size, nil
}

// TotalPages returns the number of pages needed to hold total elements at the
// given page size, rounding up. Zero elements need zero pages.
func TotalPages(total, size int) (int, error) {
	if total < 0 {
		return 0, fmt.Errorf("%w: total %d is negative", ErrInvalidArgument, total)
	}
	if size < 1 {
		return 0, fmt.Errorf("%w: page size %d is not positive", ErrInvalidArgument, size)
	}
	return (total + size - 1) / size, nil
}

// Window returns the strip of up to width consecutive page numbers to display
// around the current page, clamped to [1, totalPages]. The current page sits
// at the center of the strip when possible; near either edge the strip slides
// to stay in range. When totalPages is smaller than width the strip is simply
// every page.
func Window(page, totalPages, width int) ([]int, error) {
	if page < 1 {
		return nil, fmt.Errorf("%w: page %d is below one", ErrInvalidArgument, page)
	}
	if totalPages < 0 {
		return nil, fmt.Errorf("%w: total pages %d is negative", ErrInvalidArgument, totalPages)
	}
	if width < 1 {
		return nil, fmt.Errorf("%w: width %d is not positive", ErrInvalidArgument, width)
	}

	even := width%2 == 0
	left := width / 2
	right := width / 2
	if even {
		right++
	}

	length := width
	if totalPages < width {
		length = totalPages
	}
	strip := make([]int, 0, length)

	switch {
	case totalPages < width:
		for i := 0; i < length; i++ {
			strip = append(strip, i+1)
		}
	case page <= left:
		for i := 0; i < length; i++ {
			strip = append(strip, i+1)
		}
	case page > totalPages-right:
		for i := 0; i < length; i++ {
			strip = append(strip, totalPages-width+i+1)
		}
	default:
		offset := 0
		if even {
			offset = 1
		}
		for i := 0; i < length; i++ {
			strip = append(strip, page-left+i+offset)
		}
	}
	return strip, nil
}
