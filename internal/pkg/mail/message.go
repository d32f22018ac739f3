package mail

import (
	"bytes"
	"fmt"
	"mime"
	"mime/multipart"
	"mime/quotedprintable"
	netmail "net/mail"
	"net/textproto"
	"strings"
	"time"
)

// buildMessage renders msg as an RFC 5322 message ready for the DATA command.
func buildMessage(msg Message, from, messageID string, date time.Time) ([]byte, error) {
	var buf bytes.Buffer

	writeHeader(&buf, "From", (&netmail.Address{Name: msg.FromName, Address: from}).String())
	if len(msg.To) > 0 {
		writeHeader(&buf, "To", formatAddressList(msg.To))
	}
	if len(msg.Cc) > 0 {
		writeHeader(&buf, "Cc", formatAddressList(msg.Cc))
	}
	writeHeader(&buf, "Subject", mime.QEncoding.Encode("utf-8", msg.Subject))
	writeHeader(&buf, "Date", date.Format(time.RFC1123Z))
	writeHeader(&buf, "Message-ID", messageID)
	writeHeader(&buf, "MIME-Version", "1.0")

	switch {
	case msg.HTMLBody != "" && msg.TextBody != "":
		mw := multipart.NewWriter(&buf)
		writeHeader(&buf, "Content-Type", "multipart/alternative; boundary="+mw.Boundary())
		buf.WriteString("\r\n")

		if err := writePart(mw, "text/plain; charset=UTF-8", msg.TextBody); err != nil {
			return nil, err
		}
		if err := writePart(mw, "text/html; charset=UTF-8", msg.HTMLBody); err != nil {
			return nil, err
		}
		if err := mw.Close(); err != nil {
			return nil, err
		}
	case msg.HTMLBody != "":
		if err := writeSinglePart(&buf, "text/html; charset=UTF-8", msg.HTMLBody); err != nil {
			return nil, err
		}
	default:
		if err := writeSinglePart(&buf, "text/plain; charset=UTF-8", msg.TextBody); err != nil {
			return nil, err
		}
	}

	return buf.Bytes(), nil
}

func writeHeader(buf *bytes.Buffer, key, value string) {
	fmt.Fprintf(buf, "%s: %s\r\n", key, strings.NewReplacer("\r", "", "\n", "").Replace(value))
}

func formatAddressList(addrs []string) string {
	out := make([]string, 0, len(addrs))
	for _, addr := range addrs {
		if parsed, err := netmail.ParseAddress(addr); err == nil {
			out = append(out, parsed.String())
			continue
		}
		out = append(out, addr)
	}
	return strings.Join(out, ", ")
}

func writePart(mw *multipart.Writer, contentType, body string) error {
	part, err := mw.CreatePart(textproto.MIMEHeader{
		"Content-Type":              {contentType},
		"Content-Transfer-Encoding": {"quoted-printable"},
	})
	if err != nil {
		return err
	}

	qp := quotedprintable.NewWriter(part)
	if _, err := qp.Write([]byte(body)); err != nil {
		return err
	}
	return qp.Close()
}

func writeSinglePart(buf *bytes.Buffer, contentType, body string) error {
	writeHeader(buf, "Content-Type", contentType)
	writeHeader(buf, "Content-Transfer-Encoding", "quoted-printable")
	buf.WriteString("\r\n")

	qp := quotedprintable.NewWriter(buf)
	if _, err := qp.Write([]byte(body)); err != nil {
		return err
	}
	return qp.Close()
}

func messageIDDomain(from string) string {
	if _, domain, ok := strings.Cut(from, "@"); ok && domain != "" {
		return domain
	}
	return "localhost"
}
