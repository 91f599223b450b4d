package utils

import "testing"

func TestIsNetworkDrive(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		expected bool
	}{
		{
			name:     "Linux NFS mount",
			path:     "/mnt/nfs-share/video.mp4",
			expected: true,
		},
		{
			name:     "Linux media mount",
			path:     "/media/usb/video.mp4",
			expected: true,
		},
		{
			name:     "macOS network volume",
			path:     "/Volumes/NetworkShare/video.mp4",
			expected: true,
		},
		{
			name:     "Windows UNC path",
			path:     "//server/share/video.mp4",
			expected: true,
		},
		{
			name:     "Windows UNC path escaped",
			path:     "\\\\server\\share\\video.mp4",
			expected: true,
		},
		{
			name:     "Local path Linux",
			path:     "/home/user/videos/video.mp4",
			expected: false,
		},
		{
			name:     "Local path macOS",
			path:     "/Users/user/Movies/video.mp4",
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := IsNetworkDrive(tt.path)
			if result != tt.expected {
				t.Errorf("IsNetworkDrive(%q) = %v, expected %v", tt.path, result, tt.expected)
			}
		})
	}
}

func TestIsNetworkDrive_PathWithNetworkIndicators(t *testing.T) {
	// Paths that contain network filesystem indicators anywhere in them
	tests := []struct {
		name     string
		path     string
		expected bool
	}{
		{
			name:     "Path containing 'nfs'",
			path:     "/some/path/nfs/video.mp4",
			expected: true,
		},
		{
			name:     "Path containing 'cifs'",
			path:     "/mount/cifs-share/video.mp4",
			expected: true,
		},
		{
			name:     "Path containing 'smb'",
			path:     "/shares/smb/video.mp4",
			expected: true,
		},
		{
			name:     "Path containing 'webdav'",
			path:     "/webdav/share/video.mp4",
			expected: true,
		},
		{
			name:     "Regular path without indicators",
			path:     "/home/user/documents/video.mp4",
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := IsNetworkDrive(tt.path)
			if result != tt.expected {
				t.Errorf("IsNetworkDrive(%q) = %v, expected %v", tt.path, result, tt.expected)
			}
		})
	}
}
