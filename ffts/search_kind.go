package ffts

// SearchTest looks for a fixed pattern at any position within a certain length.
// It returns the absolute position of the match in target, or -1.
func SearchTest(target []byte, targetIndex int, maxLen int, pattern []byte) int {
	if targetIndex < 0 || targetIndex > len(target) || maxLen < 0 {
		return -1
	}

	sf := MakeStringFinder(pattern)
	targetMaxIndex := targetIndex + maxLen
	if targetMaxIndex > len(target) || targetMaxIndex < targetIndex {
		targetMaxIndex = len(target)
	}

	index := sf.Next(target[targetIndex:targetMaxIndex])
	if index == -1 {
		return -1
	}
	return index + targetIndex
}
