package mailer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderNotification(t *testing.T) {
	body, err := RenderNotification("Booking Created.", "<p>Your booking is pending.</p>")
	assert.NoError(t, err)
	assert.Contains(t, body, "Booking Created.")
	assert.Contains(t, body, "<p>Your booking is pending.</p>")
	assert.Contains(t, body, "This is an automated message from CarLink Rentals.")
	// header before content before footer
	assert.Less(t, strings.Index(body, `class="header"`), strings.Index(body, `class="content"`))
	assert.Less(t, strings.Index(body, `class="content"`), strings.Index(body, `class="footer"`))
}

func TestRenderNotificationEscapesSubject(t *testing.T) {
	body, err := RenderNotification(`<script>alert(1)</script>`, "<p>hi</p>")
	assert.NoError(t, err)
	assert.NotContains(t, body, "<script>alert(1)</script>")
}
