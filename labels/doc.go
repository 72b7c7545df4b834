// Package labels resolves label views of a database and looks up objects by
// their labels.
//
// A database may carry labels as class labels, label lists or plain strings.
// GuessClassLabelRepresentation and GuessObjectLabelRepresentation try these
// kinds in a fixed order and return the first one present, rendered as a
// relation of strings. Only relation.ErrNoSupportedDataType moves the probe on
// to the next kind; any other error is returned to the caller.
package labels
