package pipeline

import "encoding/base64"

// placeholderIconB64 is a minimal valid 1x1 PNG, standing in for the
// embedded icon.png asset original_source/src/world_utils.rs bakes in via
// include_bytes! — that binary asset isn't part of this module's source
// tree, so the Java world selector gets a generic black square instead of
// the branded icon.
const placeholderIconB64 = "iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAQAAAC1HAwCAAAAC0lEQVR42mNk+A8AAQUBAScY42YAAAAASUVORK5CYII="

var placeholderIcon = func() []byte {
	b, err := base64.StdEncoding.DecodeString(placeholderIconB64)
	if err != nil {
		panic("pipeline: invalid embedded icon: " + err.Error())
	}
	return b
}()
