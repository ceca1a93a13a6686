package report

import "strconv"

// Ellipsis marks a collapsed run of pages in the pager.
const Ellipsis = "..."

// PageLabels computes the pager row for the detail table: always page 1
// and the last page, up to two pages on each side of the current one,
// and a single ellipsis per collapsed gap. pure function of its inputs.
func PageLabels(currentPage, totalPages int) []string {
	if totalPages < 1 {
		return []string{}
	}
	if currentPage < 1 {
		currentPage = 1
	}
	if currentPage > totalPages {
		currentPage = totalPages
	}

	labels := make([]string, 0, totalPages)
	lastShown := 0
	for page := 1; page <= totalPages; page++ {
		show := page == 1 || page == totalPages ||
			(page >= currentPage-2 && page <= currentPage+2)
		if !show {
			continue
		}
		if lastShown != 0 && page-lastShown > 1 {
			labels = append(labels, Ellipsis)
		}
		labels = append(labels, strconv.Itoa(page))
		lastShown = page
	}
	return labels
}

// ClampPage keeps the current page inside 1..max(totalPages,1).
func ClampPage(currentPage, totalPages int) int {
	if totalPages < 1 {
		totalPages = 1
	}
	if currentPage < 1 {
		return 1
	}
	if currentPage > totalPages {
		return totalPages
	}
	return currentPage
}
