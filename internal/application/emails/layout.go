package emails

import (
	"fmt"
	"strings"
	"time"
)

const (
	themePrimary   = "#B08D57"
	themeTextMain  = "#1F2937"
	themeTextMuted = "#6B7280"
	themeBgBody    = "#F3F4F6"
	themeWhite     = "#FFFFFF"
	logoURL        = "https://dnavastgoed.be/wp-content/uploads/2020/09/Logo-7x7-PNG.png"
)

// EmailLayout wraps content in the agency mail layout.
func EmailLayout(contentHTML string) string {
	year := time.Now().Year()
	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="nl">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>D&amp;A Vastgoed</title>
  <style>
    body { margin: 0; padding: 0; background-color: %s; font-family: Helvetica, Arial, sans-serif; color: %s; }
    .content-body h1 { font-size: 22px; margin: 0 0 16px 0; }
    .content-body li { font-size: 14px; line-height: 1.6; }
    .content-body a { color: %s; font-weight: 600; text-decoration: none; }
    .footer-text { color: %s; font-size: 12px; }
  </style>
</head>
<body>
  <table role="presentation" width="100%%" border="0" cellspacing="0" cellpadding="0" style="background-color: %s;">
    <tr>
      <td align="center" style="padding: 32px 0;">
        <table role="presentation" width="600" border="0" cellspacing="0" cellpadding="0" style="width: 600px; background-color: %s; border-radius: 8px;">
          <tr>
            <td align="center" style="padding: 32px 0 16px 0;">
              <a href="https://dnavastgoed.be" target="_blank"><img src="%s" alt="D&amp;A Vastgoed" width="96" style="display: block; border: 0;" /></a>
            </td>
          </tr>
          <tr>
            <td class="content-body" style="padding: 0 40px 24px 40px;">%s</td>
          </tr>
          <tr>
            <td align="center" style="padding: 16px 40px 32px 40px;">
              <p class="footer-text" style="margin: 0;">© %d D&amp;A Vastgoed &nbsp;•&nbsp; <a href="mailto:info@dnavastgoed.be" style="color: %s;">info@dnavastgoed.be</a></p>
            </td>
          </tr>
        </table>
      </td>
    </tr>
  </table>
</body>
</html>`,
		themeBgBody, themeTextMain, themePrimary, themeTextMuted,
		themeBgBody, themeWhite, logoURL, contentHTML, year, themePrimary)
}

// EscapeHTML escapes HTML specials for safe interpolation.
func EscapeHTML(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	s = strings.ReplaceAll(s, "\"", "&quot;")
	return s
}
