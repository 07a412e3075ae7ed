package ports

// Walker lists the files a scan should visit, include/exclude filters
// already applied. Paths are relative to the scan root and sorted, so runs
// over an unchanged tree visit files in the same order.
type Walker interface {
	List(root string) ([]string, error)
}
