package qconstruct

import (
	"errors"
	"strings"
)

// Replace rewrites packet's path to newPath (with toCall as the
// destination), preserving the raw from-call and information field.
func Replace(packet string, toCall string, newPath []string) (string, error) {
	head, _, ok := strings.Cut(packet, ":")
	if !ok {
		return "", errors.New("packet has no body")
	}
	if head == "" {
		return "", errors.New("packet head is empty")
	}

	_, path, ok := strings.Cut(head, ">")
	if !ok {
		return "", errors.New("invalid packet header")
	}

	packet = strings.Replace(
		packet, path,
		strings.Join(append([]string{toCall}, newPath...), ","),
		1,
	)

	return packet, nil
}
