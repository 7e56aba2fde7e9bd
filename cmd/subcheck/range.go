package main

import (
	"fmt"
	"strconv"
	"strings"
)

// parseFolderRange parses an episode range argument: a single number ("7")
// or an inclusive span ("3-12").
func parseFolderRange(arg string) ([]int, error) {
	arg = strings.TrimSpace(arg)
	if arg == "" {
		return nil, fmt.Errorf("episode range is required")
	}

	if first, second, found := strings.Cut(arg, "-"); found {
		from, err := strconv.Atoi(strings.TrimSpace(first))
		if err != nil {
			return nil, fmt.Errorf("invalid episode range %q", arg)
		}
		to, err := strconv.Atoi(strings.TrimSpace(second))
		if err != nil {
			return nil, fmt.Errorf("invalid episode range %q", arg)
		}
		if from < 1 || to < from {
			return nil, fmt.Errorf("invalid episode range %q", arg)
		}
		folders := make([]int, 0, to-from+1)
		for n := from; n <= to; n++ {
			folders = append(folders, n)
		}
		return folders, nil
	}

	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 {
		return nil, fmt.Errorf("invalid episode number %q", arg)
	}
	return []int{n}, nil
}
