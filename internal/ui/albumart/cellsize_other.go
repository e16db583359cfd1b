//go:build !unix

package albumart

func getCellSize() (cellW, cellH int) {
	return defaultCellWidth, defaultCellHeight
}
