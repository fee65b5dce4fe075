package bedrockwriter

import "encoding/base64"

// placeholderWorldIconB64 is a minimal valid 1x1 JPEG, standing in for the
// embedded world_icon.jpeg asset original_source/src/world_editor/bedrock.rs
// bakes in via include_bytes! — that binary asset isn't part of this
// module's source tree, so Bedrock's world picker gets a generic black
// square instead of the branded icon.
const placeholderWorldIconB64 = "/9j/4AAQSkZJRgABAQEAYABgAAD/2wBDAAMCAgICAgMCAgIDAwMDBAYEBAQEBAgGBgUGCQgKCgkICQkKDA8MCgsOCwkJDRENDg8QEBEQCgwSExIQEw8QEBD/2wBDAQMDAwQDBAgEBAgQCwkLEBAQEBAQEBAQEBAQEBAQEBAQEBAQEBAQEBAQEBAQEBAQEBAQEBAQEBAQEBAQEBAQEBD/wAARCAABAAEDAREAAhEBAxEB/8QAFQABAQAAAAAAAAAAAAAAAAAAAAj/xAAUEAEAAAAAAAAAAAAAAAAAAAAA/8QAFQEBAQAAAAAAAAAAAAAAAAAAAAX/xAAUEQEAAAAAAAAAAAAAAAAAAAAA/9oADAMBAAIRAxEAPwCdABmX/9k="

var placeholderWorldIcon = func() []byte {
	b, err := base64.StdEncoding.DecodeString(placeholderWorldIconB64)
	if err != nil {
		panic("bedrockwriter: invalid embedded world icon: " + err.Error())
	}
	return b
}()
