package openapi

// InfoBuilder assembles the Info Object of a document.
//
// See: https://spec.openapis.org/oas/v3.1.0#info-object
type InfoBuilder struct {
	title          string
	summary        string
	description    string
	termsOfService string
	version        string
	contact        *ContactBuilder
	license        *LicenseBuilder
	logo           *LogoBuilder
}

// NewInfo returns an empty info builder.
func NewInfo() *InfoBuilder {
	return &InfoBuilder{}
}

// Title sets the API title.
func (b *InfoBuilder) Title(title string) *InfoBuilder {
	b.title = title
	return b
}

// Summary sets a short summary of the API.
func (b *InfoBuilder) Summary(summary string) *InfoBuilder {
	b.summary = summary
	return b
}

// Description sets the API description. Multiple lines are joined with
// newlines; Markdown is rendered by Redoc.
func (b *InfoBuilder) Description(text ...string) *InfoBuilder {
	b.description = lines(text)
	return b
}

// TermsOfService sets the URL of the terms of service.
func (b *InfoBuilder) TermsOfService(url string) *InfoBuilder {
	b.termsOfService = url
	return b
}

// Version sets the version of the API description, not of the OpenAPI format.
func (b *InfoBuilder) Version(version string) *InfoBuilder {
	b.version = version
	return b
}

// Contact configures the contact information.
func (b *InfoBuilder) Contact(fn func(*ContactBuilder)) *InfoBuilder {
	if b.contact == nil {
		b.contact = &ContactBuilder{}
	}
	fn(b.contact)
	return b
}

// License configures the license information.
func (b *InfoBuilder) License(fn func(*LicenseBuilder)) *InfoBuilder {
	if b.license == nil {
		b.license = &LicenseBuilder{}
	}
	fn(b.license)
	return b
}

// Logo configures the x-logo extension shown by Redoc.
func (b *InfoBuilder) Logo(fn func(*LogoBuilder)) *InfoBuilder {
	if b.logo == nil {
		b.logo = &LogoBuilder{}
	}
	fn(b.logo)
	return b
}

// Render returns the Info Object.
func (b *InfoBuilder) Render() Info {
	info := Info{
		Title:          b.title,
		Summary:        b.summary,
		Version:        b.version,
		Description:    b.description,
		TermsOfService: b.termsOfService,
	}
	if b.contact != nil {
		info.Contact = b.contact.Render()
	}
	if b.license != nil {
		info.License = b.license.Render()
	}
	if b.logo != nil {
		info.Logo = b.logo.Render()
	}
	return info
}

// ContactBuilder assembles a Contact Object.
//
// See: https://spec.openapis.org/oas/v3.1.0#contact-object
type ContactBuilder struct {
	name  string
	url   string
	email string
}

func (b *ContactBuilder) Name(name string) *ContactBuilder {
	b.name = name
	return b
}

func (b *ContactBuilder) URL(url string) *ContactBuilder {
	b.url = url
	return b
}

func (b *ContactBuilder) Email(email string) *ContactBuilder {
	b.email = email
	return b
}

// Render returns the Contact Object.
func (b *ContactBuilder) Render() *Contact {
	return &Contact{Name: b.name, URL: b.url, Email: b.email}
}

// LicenseBuilder assembles a License Object. Identifier is an SPDX
// expression and is mutually exclusive with URL in OpenAPI 3.1.
//
// See: https://spec.openapis.org/oas/v3.1.0#license-object
type LicenseBuilder struct {
	name       string
	identifier string
	url        string
}

func (b *LicenseBuilder) Name(name string) *LicenseBuilder {
	b.name = name
	return b
}

func (b *LicenseBuilder) Identifier(identifier string) *LicenseBuilder {
	b.identifier = identifier
	return b
}

func (b *LicenseBuilder) URL(url string) *LicenseBuilder {
	b.url = url
	return b
}

// Render returns the License Object.
func (b *LicenseBuilder) Render() *License {
	return &License{Name: b.name, Identifier: b.identifier, URL: b.url}
}

// LogoBuilder assembles the Redoc x-logo extension.
type LogoBuilder struct {
	url             string
	backgroundColor string
	altText         string
	href            string
}

// URL sets the logo image URL.
func (b *LogoBuilder) URL(url string) *LogoBuilder {
	b.url = url
	return b
}

// BackgroundColor sets the CSS color drawn behind the logo.
func (b *LogoBuilder) BackgroundColor(color string) *LogoBuilder {
	b.backgroundColor = color
	return b
}

// AltText sets the image alt text.
func (b *LogoBuilder) AltText(text string) *LogoBuilder {
	b.altText = text
	return b
}

// Href sets the link target of the logo. Redoc defaults to contact.url.
func (b *LogoBuilder) Href(href string) *LogoBuilder {
	b.href = href
	return b
}

// Render returns the x-logo value.
func (b *LogoBuilder) Render() *Logo {
	return &Logo{
		URL:             b.url,
		BackgroundColor: b.backgroundColor,
		AltText:         b.altText,
		Href:            b.href,
	}
}
