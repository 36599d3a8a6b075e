package service

// QRCodeService defines the interface for QR code generation
type QRCodeService interface {
	// GeneratePlaylistQR encodes an IPTV playlist URL as a PNG QR code
	GeneratePlaylistQR(playlistURL string) ([]byte, error)
}
