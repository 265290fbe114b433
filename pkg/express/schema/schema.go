// Package schema mirrors the DHL Express wire documents.
//
// The same structs serve the SOAP body (xml tags) and the REST payload (json tags). Optional
// elements are pointers with omitempty, so an absent request value never reaches the wire.
package schema

import (
	"encoding/xml"
)

// Wire formats of dates and times.
const (
	ShipTimestampLayout = "2006-01-02T15:04:05 GMT-07:00"
	DateLayout          = "2006-01-02"
	TimeLayout          = "15:04:05"
	EstDeliveryLayout   = "2006-01-02 15:04:05 GMT-07:00"
)

// ShipmentRequest is the create shipment document.
type ShipmentRequest struct {
	XMLName           xml.Name          `xml:"ShipmentRequest" json:"-"`
	RequestedShipment RequestedShipment `xml:"RequestedShipment" json:"RequestedShipment"`
}

// RequestedShipment is the body of a ShipmentRequest.
type RequestedShipment struct {
	ShipmentInfo             ShipmentInfo        `xml:"ShipmentInfo" json:"ShipmentInfo"`
	ShipTimestamp            string              `xml:"ShipTimestamp" json:"ShipTimestamp"`
	PickupLocationCloseTime  *string             `xml:"PickupLocationCloseTime,omitempty" json:"PickupLocationCloseTime,omitempty"`
	SpecialPickupInstruction *string             `xml:"SpecialPickupInstruction,omitempty" json:"SpecialPickupInstruction,omitempty"`
	PickupLocation           *string             `xml:"PickupLocation,omitempty" json:"PickupLocation,omitempty"`
	PaymentInfo              string              `xml:"PaymentInfo" json:"PaymentInfo"`
	InternationalDetail      InternationalDetail `xml:"InternationalDetail" json:"InternationalDetail"`
	Ship                     Ship                `xml:"Ship" json:"Ship"`
	Packages                 Packages            `xml:"Packages" json:"Packages"`
}

// ShipmentInfo is the general shipment detail element.
type ShipmentInfo struct {
	DropOffType                        string           `xml:"DropOffType" json:"DropOffType"`
	ServiceType                        string           `xml:"ServiceType" json:"ServiceType"`
	Account                            *string          `xml:"Account,omitempty" json:"Account,omitempty"`
	Billing                            *Billing         `xml:"Billing,omitempty" json:"Billing,omitempty"`
	SpecialServices                    *SpecialServices `xml:"SpecialServices,omitempty" json:"SpecialServices,omitempty"`
	Currency                           string           `xml:"Currency" json:"Currency"`
	UnitOfMeasurement                  string           `xml:"UnitOfMeasurement" json:"UnitOfMeasurement"`
	ShipmentIdentificationNumber       *string          `xml:"ShipmentIdentificationNumber,omitempty" json:"ShipmentIdentificationNumber,omitempty"`
	UseOwnShipmentIdentificationNumber *string          `xml:"UseOwnShipmentIdentificationNumber,omitempty" json:"UseOwnShipmentIdentificationNumber,omitempty"`
	PackagesCount                      *int             `xml:"PackagesCount,omitempty" json:"PackagesCount,omitempty"`
	SendPackage                        *string          `xml:"SendPackage,omitempty" json:"SendPackage,omitempty"`
	LabelType                          *string          `xml:"LabelType,omitempty" json:"LabelType,omitempty"`
	LabelTemplate                      *string          `xml:"LabelTemplate,omitempty" json:"LabelTemplate,omitempty"`
	ArchiveLabelTemplate               *string          `xml:"ArchiveLabelTemplate,omitempty" json:"ArchiveLabelTemplate,omitempty"`
	PaperlessTradeEnabled              *bool            `xml:"PaperlessTradeEnabled,omitempty" json:"PaperlessTradeEnabled,omitempty"`
	PaperlessTradeImage                *string          `xml:"PaperlessTradeImage,omitempty" json:"PaperlessTradeImage,omitempty"`
}

// Billing is the billing element.
type Billing struct {
	ShipperAccountNumber string  `xml:"ShipperAccountNumber" json:"ShipperAccountNumber"`
	ShippingPaymentType  string  `xml:"ShippingPaymentType" json:"ShippingPaymentType"`
	BillingAccountNumber *string `xml:"BillingAccountNumber,omitempty" json:"BillingAccountNumber,omitempty"`
}

// SpecialServices wraps the Service list.
type SpecialServices struct {
	Service []Service `xml:"Service" json:"Service"`
}

// Service is one special service element.
type Service struct {
	ServiceType  string   `xml:"ServiceType" json:"ServiceType"`
	ServiceValue *float64 `xml:"ServiceValue,omitempty" json:"ServiceValue,omitempty"`
	CurrencyCode *string  `xml:"CurrencyCode,omitempty" json:"CurrencyCode,omitempty"`
}

// InternationalDetail is the customs element.
type InternationalDetail struct {
	Commodities Commodities `xml:"Commodities" json:"Commodities"`
	Content     string      `xml:"Content" json:"Content"`
}

// Commodities describes the goods for customs.
type Commodities struct {
	NumberOfPieces *int     `xml:"NumberOfPieces,omitempty" json:"NumberOfPieces,omitempty"`
	Description    string   `xml:"Description" json:"Description"`
	CustomsValue   *float64 `xml:"CustomsValue,omitempty" json:"CustomsValue,omitempty"`
}

// Ship holds the party elements.
type Ship struct {
	Shipper   ContactInfo  `xml:"Shipper" json:"Shipper"`
	Recipient ContactInfo  `xml:"Recipient" json:"Recipient"`
	Buyer     *ContactInfo `xml:"Buyer,omitempty" json:"Buyer,omitempty"`
}

// ContactInfo pairs a Contact with an Address.
type ContactInfo struct {
	Contact Contact `xml:"Contact" json:"Contact"`
	Address Address `xml:"Address" json:"Address"`
}

// Contact is the contact element of a party.
type Contact struct {
	PersonName        string  `xml:"PersonName" json:"PersonName"`
	CompanyName       string  `xml:"CompanyName" json:"CompanyName"`
	PhoneNumber       string  `xml:"PhoneNumber" json:"PhoneNumber"`
	EmailAddress      *string `xml:"EmailAddress,omitempty" json:"EmailAddress,omitempty"`
	MobilePhoneNumber *string `xml:"MobilePhoneNumber,omitempty" json:"MobilePhoneNumber,omitempty"`
}

// Address is the address element of a party.
type Address struct {
	StreetLines         string  `xml:"StreetLines" json:"StreetLines"`
	StreetName          *string `xml:"StreetName,omitempty" json:"StreetName,omitempty"`
	StreetNumber        *string `xml:"StreetNumber,omitempty" json:"StreetNumber,omitempty"`
	StreetLines2        *string `xml:"StreetLines2,omitempty" json:"StreetLines2,omitempty"`
	StreetLines3        *string `xml:"StreetLines3,omitempty" json:"StreetLines3,omitempty"`
	City                string  `xml:"City" json:"City"`
	StateOrProvinceCode *string `xml:"StateOrProvinceCode,omitempty" json:"StateOrProvinceCode,omitempty"`
	PostalCode          string  `xml:"PostalCode" json:"PostalCode"`
	CountryCode         string  `xml:"CountryCode" json:"CountryCode"`
}

// Packages wraps the RequestedPackages list.
type Packages struct {
	RequestedPackages []RequestedPackage `xml:"RequestedPackages" json:"RequestedPackages"`
}

// RequestedPackage is one piece; number is an attribute.
type RequestedPackage struct {
	Number             int         `xml:"number,attr" json:"@number"`
	Weight             float64     `xml:"Weight" json:"Weight"`
	Dimensions         *Dimensions `xml:"Dimensions,omitempty" json:"Dimensions,omitempty"`
	CustomerReferences string      `xml:"CustomerReferences" json:"CustomerReferences"`
}

// Dimensions of a RequestedPackage.
type Dimensions struct {
	Length float64 `xml:"Length" json:"Length"`
	Width  float64 `xml:"Width" json:"Width"`
	Height float64 `xml:"Height" json:"Height"`
}

// ShipmentResponse is the create shipment reply.
type ShipmentResponse struct {
	XMLName                      xml.Name       `xml:"ShipmentResponse" json:"-"`
	Notification                 []Notification `xml:"Notification" json:"Notification"`
	PackagesResult               PackagesResult `xml:"PackagesResult" json:"PackagesResult"`
	LabelImage                   []LabelImage   `xml:"LabelImage" json:"LabelImage"`
	ShipmentIdentificationNumber string         `xml:"ShipmentIdentificationNumber" json:"ShipmentIdentificationNumber"`
	DispatchConfirmationNumber   string         `xml:"DispatchConfirmationNumber" json:"DispatchConfirmationNumber"`
}

// Notification is a status entry of a reply; code is an attribute.
type Notification struct {
	Code    Code   `xml:"code,attr" json:"@code"`
	Message string `xml:"Message" json:"Message"`
}

// PackagesResult wraps the PackageResult list.
type PackagesResult struct {
	PackageResult []PackageResult `xml:"PackageResult" json:"PackageResult"`
}

// PackageResult carries the tracking number of one piece.
type PackageResult struct {
	Number         int    `xml:"number,attr" json:"@number"`
	TrackingNumber string `xml:"TrackingNumber" json:"TrackingNumber"`
}

// LabelImage carries one base64 encoded label.
type LabelImage struct {
	LabelImageFormat string `xml:"LabelImageFormat" json:"LabelImageFormat"`
	GraphicImage     string `xml:"GraphicImage" json:"GraphicImage"` // base64
}

// DeleteRequest is the delete shipment (cancel pickup) document.
type DeleteRequest struct {
	XMLName                    xml.Name `xml:"DeleteRequest" json:"-"`
	PickupDate                 string   `xml:"PickupDate" json:"PickupDate"`
	PickupCountry              string   `xml:"PickupCountry" json:"PickupCountry"`
	DispatchConfirmationNumber string   `xml:"DispatchConfirmationNumber" json:"DispatchConfirmationNumber"`
	RequestorName              string   `xml:"RequestorName" json:"RequestorName"`
	Reason                     *string  `xml:"Reason,omitempty" json:"Reason,omitempty"`
}

// DeleteResponse is the delete shipment reply.
type DeleteResponse struct {
	XMLName             xml.Name       `xml:"DeleteResponse" json:"-"`
	ServiceInvocationID string         `xml:"ServiceInvocationID" json:"ServiceInvocationID"`
	Notification        []Notification `xml:"Notification" json:"Notification"`
}

// TrackShipmentRequest is the tracking document.
type TrackShipmentRequest struct {
	XMLName         xml.Name           `xml:"trackShipmentRequest" json:"-"`
	TrackingRequest TrackingRequestRef `xml:"trackingRequest" json:"trackingRequest"`
}

// TrackingRequestRef is the inner trackingRequest element.
type TrackingRequestRef struct {
	TrackingRequest TrackingRequest `xml:"TrackingRequest" json:"TrackingRequest"`
}

// TrackingRequest is the body of a tracking call.
type TrackingRequest struct {
	Request                      Request   `xml:"Request" json:"Request"`
	AWBNumber                    AWBNumber `xml:"AWBNumber" json:"AWBNumber"`
	LevelOfDetails               string    `xml:"LevelOfDetails" json:"LevelOfDetails"`
	PiecesEnabled                string    `xml:"PiecesEnabled" json:"PiecesEnabled"`
	EstimatedDeliveryDateEnabled bool      `xml:"EstimatedDeliveryDateEnabled" json:"EstimatedDeliveryDateEnabled"`
}

// Request holds the ServiceHeader of a tracking call.
type Request struct {
	ServiceHeader ServiceHeader `xml:"ServiceHeader" json:"ServiceHeader"`
}

// ServiceHeader identifies a tracking message.
type ServiceHeader struct {
	MessageTime      string `xml:"MessageTime" json:"MessageTime"`
	MessageReference string `xml:"MessageReference" json:"MessageReference"`
}

// AWBNumber wraps the waybill list of a tracking call.
type AWBNumber struct {
	ArrayOfAWBNumberItem []string `xml:"ArrayOfAWBNumberItem" json:"ArrayOfAWBNumberItem"`
}

// TrackShipmentResponse is the tracking reply.
type TrackShipmentResponse struct {
	XMLName          xml.Name            `xml:"trackShipmentRequestResponse" json:"-"`
	TrackingResponse TrackingResponseRef `xml:"trackingResponse" json:"trackingResponse"`
}

// TrackingResponseRef is the inner trackingResponse element.
type TrackingResponseRef struct {
	TrackingResponse TrackingResponse `xml:"TrackingResponse" json:"TrackingResponse"`
}

// TrackingResponse is the body of a tracking reply.
type TrackingResponse struct {
	Notification []Notification `xml:"Notification" json:"Notification"`
	AWBInfo      AWBInfoList    `xml:"AWBInfo" json:"AWBInfo"`
}

// AWBInfoList wraps the per-waybill results.
type AWBInfoList struct {
	ArrayOfAWBInfoItem []AWBInfo `xml:"ArrayOfAWBInfoItem" json:"ArrayOfAWBInfoItem"`
}

// AWBInfo is the result for one waybill.
type AWBInfo struct {
	AWBNumber    string           `xml:"AWBNumber" json:"AWBNumber"`
	Status       Status           `xml:"Status" json:"Status"`
	ShipmentInfo *TrackedShipment `xml:"ShipmentInfo,omitempty" json:"ShipmentInfo,omitempty"`
	Pieces       *TrackedPieces   `xml:"Pieces,omitempty" json:"Pieces,omitempty"`
}

// Status is the outcome for one waybill.
type Status struct {
	ActionStatus string `xml:"ActionStatus" json:"ActionStatus"`
}

// TrackedShipment holds the shipment level events and delivery estimate.
type TrackedShipment struct {
	ShipmentEvent *ShipmentEvents `xml:"ShipmentEvent,omitempty" json:"ShipmentEvent,omitempty"`
	EstDlvyDate   *string         `xml:"EstDlvyDate,omitempty" json:"EstDlvyDate,omitempty"`
}

// ShipmentEvents wraps the shipment events.
type ShipmentEvents struct {
	ArrayOfShipmentEventItem []EventItem `xml:"ArrayOfShipmentEventItem" json:"ArrayOfShipmentEventItem"`
}

// EventItem is one checkpoint.
type EventItem struct {
	Date         string       `xml:"Date" json:"Date"`
	Time         string       `xml:"Time" json:"Time"`
	ServiceEvent ServiceEvent `xml:"ServiceEvent" json:"ServiceEvent"`
	ServiceArea  ServiceArea  `xml:"ServiceArea" json:"ServiceArea"`
}

// ServiceEvent is the code and description of a checkpoint.
type ServiceEvent struct {
	EventCode   string `xml:"EventCode" json:"EventCode"`
	Description string `xml:"Description" json:"Description"`
}

// ServiceArea is the facility of a checkpoint.
type ServiceArea struct {
	ServiceAreaCode string `xml:"ServiceAreaCode" json:"ServiceAreaCode"`
}

// TrackedPieces wraps the piece results.
type TrackedPieces struct {
	PieceInfo PieceInfoList `xml:"PieceInfo" json:"PieceInfo"`
}

// PieceInfoList wraps the piece entries.
type PieceInfoList struct {
	ArrayOfPieceInfoItem []PieceInfo `xml:"ArrayOfPieceInfoItem" json:"ArrayOfPieceInfoItem"`
}

// PieceInfo is the result for one piece.
type PieceInfo struct {
	PieceDetails PieceDetails `xml:"PieceDetails" json:"PieceDetails"`
	PieceEvent   PieceEvents  `xml:"PieceEvent" json:"PieceEvent"`
}

// PieceDetails identifies a piece by license plate.
type PieceDetails struct {
	LicensePlate string `xml:"LicensePlate" json:"LicensePlate"`
}

// PieceEvents wraps the checkpoints of a piece.
type PieceEvents struct {
	ArrayOfPieceEventItem []EventItem `xml:"ArrayOfPieceEventItem" json:"ArrayOfPieceEventItem"`
}
