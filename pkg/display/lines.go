package display

import "fmt"

// WrapLabel splits a class label to fit LineWidth columns. Labels never
// need more than two lines in practice.
func WrapLabel(label string) []string {
	if len(label) > LineWidth {
		return []string{label[:LineWidth], label[LineWidth:]}
	}
	return []string{label}
}

// Label returns the human-facing name for a class index, falling back
// to a numeric name when no label is configured.
func Label(labels []string, cls int) string {
	if cls >= 0 && cls < len(labels) {
		return labels[cls]
	}
	return fmt.Sprintf("class-%d", cls)
}

// TrainingLines builds the training result panel: the prediction block
// followed by the declared ground truth block, at most ResultLines.
func TrainingLines(labels []string, pred, truth int) []string {
	lines := make([]string, 0, ResultLines)
	lines = append(lines, "Prediction:")
	lines = append(lines, WrapLabel(Label(labels, pred))...)
	lines = append(lines, fmt.Sprintf("  class %d  ", pred))
	lines = append(lines, "True Label:")
	lines = append(lines, WrapLabel(Label(labels, truth))...)
	lines = append(lines, fmt.Sprintf("  class %d  ", truth))
	return lines
}

// InferenceLines builds the inference result panel, at most 4 lines.
func InferenceLines(labels []string, pred int) []string {
	lines := make([]string, 0, 4)
	lines = append(lines, "Prediction:")
	lines = append(lines, WrapLabel(Label(labels, pred))...)
	lines = append(lines, fmt.Sprintf("  class %d  ", pred))
	return lines
}
