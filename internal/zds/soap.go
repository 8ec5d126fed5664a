package zds

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
)

const (
	NamespaceSOAP11 = "http://schemas.xmlsoap.org/soap/envelope/"
	NamespaceSOAP12 = "http://www.w3.org/2003/05/soap-envelope"
)

// ErrNoBody is returned when a payload carries no message element.
var ErrNoBody = errors.New("soap envelope has no body content")

type envelope struct {
	XMLName xml.Name `xml:"http://schemas.xmlsoap.org/soap/envelope/ Envelope"`
	Body    body     `xml:"http://schemas.xmlsoap.org/soap/envelope/ Body"`
}

type body struct {
	Content any
}

// Marshal wraps msg in a SOAP 1.1 envelope.
func Marshal(msg any) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	enc := xml.NewEncoder(&buf)
	if err := enc.Encode(envelope{Body: body{Content: msg}}); err != nil {
		return nil, fmt.Errorf("marshal soap envelope: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("marshal soap envelope: %w", err)
	}
	return buf.Bytes(), nil
}

// Unmarshal decodes the message inside a SOAP envelope into v. A payload
// without an envelope is decoded from its root element. Namespace
// declarations made on the envelope stay in scope for the message.
func Unmarshal(raw []byte, v any) error {
	dec := xml.NewDecoder(bytes.NewReader(raw))
	start, err := messageElement(dec)
	if err != nil {
		return err
	}
	if err := dec.DecodeElement(v, &start); err != nil {
		return fmt.Errorf("decode %s: %w", start.Name.Local, err)
	}
	return nil
}

// MessageName returns the qualified name of the message element of raw, so
// callers can route before committing to a type.
func MessageName(raw []byte) (xml.Name, error) {
	start, err := messageElement(xml.NewDecoder(bytes.NewReader(raw)))
	if err != nil {
		return xml.Name{}, err
	}
	return start.Name, nil
}

func messageElement(dec *xml.Decoder) (xml.StartElement, error) {
	depth := 0
	inBody := false
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return xml.StartElement{}, ErrNoBody
		}
		if err != nil {
			return xml.StartElement{}, fmt.Errorf("read xml: %w", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			depth++
			switch {
			case depth == 1 && !isSOAP(t.Name, "Envelope"):
				return t, nil
			case depth == 2 && isSOAP(t.Name, "Body"):
				inBody = true
			case depth == 3 && inBody:
				return t, nil
			}
		case xml.EndElement:
			depth--
			if inBody && depth < 2 {
				return xml.StartElement{}, ErrNoBody
			}
		}
	}
}

func isSOAP(name xml.Name, local string) bool {
	return name.Local == local && (name.Space == NamespaceSOAP11 || name.Space == NamespaceSOAP12)
}
