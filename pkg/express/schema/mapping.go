package schema

import (
	"encoding/base64"
	"fmt"
	"time"

	"github.com/tournevent/dhlexpress/pkg/express/opt"
	"github.com/tournevent/dhlexpress/pkg/express/request"
	"github.com/tournevent/dhlexpress/pkg/express/response"
)

// FromShipmentRequest maps a create shipment envelope to its wire document.
func FromShipmentRequest(r *request.ShipmentRequest) ShipmentRequest {
	rs := RequestedShipment{
		ShipmentInfo:             fromShipmentInfo(r.ShipmentInfo()),
		ShipTimestamp:            r.ShipTimestamp().Format(ShipTimestampLayout),
		PickupLocationCloseTime:  str(r.PickupLocationCloseTime()),
		SpecialPickupInstruction: str(r.SpecialPickupInstruction()),
		PickupLocation:           str(r.PickupLocation()),
		PaymentInfo:              r.PaymentInfo().String(),
		InternationalDetail:      fromInternationalDetail(r.InternationalDetail()),
		Ship:                     fromShip(r.Ship()),
	}
	for _, p := range r.Packages() {
		rs.Packages.RequestedPackages = append(rs.Packages.RequestedPackages, fromPackage(p))
	}
	return ShipmentRequest{RequestedShipment: rs}
}

func fromShipmentInfo(i request.ShipmentInfo) ShipmentInfo {
	out := ShipmentInfo{
		DropOffType:                        i.DropOffType().String(),
		ServiceType:                        i.ServiceType().String(),
		Account:                            str(i.Account()),
		Currency:                           i.Currency().String(),
		UnitOfMeasurement:                  i.UnitOfMeasurement().String(),
		ShipmentIdentificationNumber:       str(i.ShipmentIdentificationNumber()),
		UseOwnShipmentIdentificationNumber: str(i.UseOwnShipmentIdentificationNumber()),
		PackagesCount:                      i.PackagesCount().Ptr(),
		SendPackage:                        i.SendPackage().Ptr(),
		LabelType:                          str(i.LabelType()),
		LabelTemplate:                      str(i.LabelTemplate()),
		ArchiveLabelTemplate:               str(i.ArchiveLabelTemplate()),
		PaperlessTradeEnabled:              i.PaperlessTradeEnabled().Ptr(),
		PaperlessTradeImage:                i.PaperlessTradeImage().Ptr(),
	}

	if b, ok := i.Billing().Get(); ok {
		out.Billing = &Billing{
			ShipperAccountNumber: b.ShipperAccountNumber().String(),
			ShippingPaymentType:  b.ShippingPaymentType().String(),
			BillingAccountNumber: str(b.BillingAccountNumber()),
		}
	}

	if services, ok := i.SpecialServices().Get(); ok {
		out.SpecialServices = &SpecialServices{}
		for _, s := range services.Items() {
			out.SpecialServices.Service = append(out.SpecialServices.Service, Service{
				ServiceType:  s.ServiceType().String(),
				ServiceValue: s.ServiceValue().Ptr(),
				CurrencyCode: str(s.Currency()),
			})
		}
	}
	return out
}

func fromInternationalDetail(d request.InternationalDetail) InternationalDetail {
	return InternationalDetail{
		Commodities: Commodities{
			NumberOfPieces: d.NumberOfPieces().Ptr(),
			Description:    d.Description().String(),
			CustomsValue:   d.CustomsValue().Ptr(),
		},
		Content: d.Content().String(),
	}
}

func fromShip(s request.Ship) Ship {
	out := Ship{
		Shipper:   fromContactInfo(s.Shipper()),
		Recipient: fromContactInfo(s.Recipient()),
	}
	if b, ok := s.Buyer().Get(); ok {
		buyer := fromContactInfo(b)
		out.Buyer = &buyer
	}
	return out
}

func fromContactInfo(ci request.ContactInfo) ContactInfo {
	c, a := ci.Contact(), ci.Address()
	return ContactInfo{
		Contact: Contact{
			PersonName:        c.PersonName().String(),
			CompanyName:       c.CompanyName().String(),
			PhoneNumber:       c.PhoneNumber().String(),
			EmailAddress:      str(c.EmailAddress()),
			MobilePhoneNumber: str(c.MobilePhoneNumber()),
		},
		Address: Address{
			StreetLines:         a.StreetLines().String(),
			StreetName:          str(a.StreetName()),
			StreetNumber:        str(a.StreetNumber()),
			StreetLines2:        str(a.StreetLines2()),
			StreetLines3:        str(a.StreetLines3()),
			City:                a.City().String(),
			StateOrProvinceCode: str(a.StateOrProvinceCode()),
			PostalCode:          a.PostalCode().String(),
			CountryCode:         a.CountryCode().String(),
		},
	}
}

func fromPackage(p request.Package) RequestedPackage {
	out := RequestedPackage{
		Number:             p.Number(),
		Weight:             p.Weight(),
		CustomerReferences: p.CustomerReference().String(),
	}
	if d, ok := p.Dimensions().Get(); ok {
		out.Dimensions = &Dimensions{Length: d.Length, Width: d.Width, Height: d.Height}
	}
	return out
}

// FromDeleteRequest maps a delete shipment envelope to its wire document.
func FromDeleteRequest(r *request.ShipmentDeleteRequest) DeleteRequest {
	return DeleteRequest{
		PickupDate:                 r.PickupDate().Format(DateLayout),
		PickupCountry:              r.PickupCountry().String(),
		DispatchConfirmationNumber: r.DispatchConfirmationNumber().String(),
		RequestorName:              r.RequestorName().String(),
		Reason:                     str(r.Reason()),
	}
}

// FromTrackingRequest maps a tracking envelope to its wire document. The AWB list is sent as
// given, even when empty.
func FromTrackingRequest(r *request.TrackingRequest) TrackShipmentRequest {
	msg := r.Message()
	return TrackShipmentRequest{
		TrackingRequest: TrackingRequestRef{
			TrackingRequest: TrackingRequest{
				Request: Request{ServiceHeader: ServiceHeader{
					MessageTime:      msg.MessageTime().Format(time.RFC3339),
					MessageReference: msg.MessageReference().String(),
				}},
				AWBNumber:                    AWBNumber{ArrayOfAWBNumberItem: r.AWBNumbers()},
				LevelOfDetails:               r.LevelOfDetails(),
				PiecesEnabled:                r.PiecesEnabled(),
				EstimatedDeliveryDateEnabled: r.EstimatedDeliveryDateRequested(),
			},
		},
	}
}

// ToShipmentResponse converts a create shipment reply and decodes its label images. Labels
// of a reply carrying error notifications are left undecoded.
func ToShipmentResponse(s ShipmentResponse) (*response.ShipmentResponse, error) {
	out := &response.ShipmentResponse{
		Notifications:                toNotifications(s.Notification),
		ShipmentIdentificationNumber: s.ShipmentIdentificationNumber,
		DispatchConfirmationNumber:   s.DispatchConfirmationNumber,
	}
	for _, p := range s.PackagesResult.PackageResult {
		out.PackagesResult = append(out.PackagesResult, response.PackageResult{
			Number:         p.Number,
			TrackingNumber: p.TrackingNumber,
		})
	}
	if len(response.Errors(out.Notifications)) > 0 {
		return out, nil
	}
	for i, img := range s.LabelImage {
		data, err := base64.StdEncoding.DecodeString(img.GraphicImage)
		if err != nil {
			return nil, fmt.Errorf("decode label image %d: %w", i, err)
		}
		out.LabelImages = append(out.LabelImages, response.LabelImage{Format: img.LabelImageFormat, Data: data})
	}
	return out, nil
}

// ToDeleteResponse converts a delete shipment reply.
func ToDeleteResponse(d DeleteResponse) *response.ShipmentDeleteResponse {
	return &response.ShipmentDeleteResponse{
		ServiceInvocationID: d.ServiceInvocationID,
		Notifications:       toNotifications(d.Notification),
	}
}

// ToTrackingResponse converts a tracking reply. A reply carrying error notifications is
// returned with its notifications only.
func ToTrackingResponse(t TrackShipmentResponse) (*response.TrackingResponse, error) {
	body := t.TrackingResponse.TrackingResponse
	out := &response.TrackingResponse{Notifications: toNotifications(body.Notification)}
	if len(response.Errors(out.Notifications)) > 0 {
		return out, nil
	}

	for _, item := range body.AWBInfo.ArrayOfAWBInfoItem {
		info := response.AWBInfo{
			AWBNumber: item.AWBNumber,
			Status:    item.Status.ActionStatus,
		}

		if s := item.ShipmentInfo; s != nil {
			if s.ShipmentEvent != nil {
				events, err := toEvents(s.ShipmentEvent.ArrayOfShipmentEventItem)
				if err != nil {
					return nil, fmt.Errorf("awb %s: %w", item.AWBNumber, err)
				}
				info.Events = events
			}
			if s.EstDlvyDate != nil && *s.EstDlvyDate != "" {
				edd, err := time.Parse(EstDeliveryLayout, *s.EstDlvyDate)
				if err != nil {
					return nil, fmt.Errorf("awb %s: estimated delivery date: %w", item.AWBNumber, err)
				}
				info.EstimatedDeliveryDate = opt.Some(edd)
			}
		}

		if item.Pieces != nil {
			for _, p := range item.Pieces.PieceInfo.ArrayOfPieceInfoItem {
				events, err := toEvents(p.PieceEvent.ArrayOfPieceEventItem)
				if err != nil {
					return nil, fmt.Errorf("awb %s piece %s: %w", item.AWBNumber, p.PieceDetails.LicensePlate, err)
				}
				info.Pieces = append(info.Pieces, response.PieceInfo{
					LicensePlate: p.PieceDetails.LicensePlate,
					Events:       events,
				})
			}
		}

		out.AWBs = append(out.AWBs, info)
	}
	return out, nil
}

func toEvents(items []EventItem) ([]response.Event, error) {
	var out []response.Event
	for _, e := range items {
		ts, err := time.Parse(DateLayout+" "+TimeLayout, e.Date+" "+e.Time)
		if err != nil {
			return nil, fmt.Errorf("event %s: %w", e.ServiceEvent.EventCode, err)
		}
		out = append(out, response.Event{
			Timestamp:   ts,
			Code:        e.ServiceEvent.EventCode,
			Description: e.ServiceEvent.Description,
			ServiceArea: e.ServiceArea.ServiceAreaCode,
		})
	}
	return out, nil
}

func toNotifications(in []Notification) []response.Notification {
	out := make([]response.Notification, 0, len(in))
	for _, n := range in {
		out = append(out, response.Notification{Code: int(n.Code), Message: n.Message})
	}
	return out
}

// FromShipmentResponse is the inverse of ToShipmentResponse. Used to stub carrier replies and to
// print decoded ones.
func FromShipmentResponse(r *response.ShipmentResponse) ShipmentResponse {
	out := ShipmentResponse{
		Notification:                 fromNotifications(r.Notifications),
		ShipmentIdentificationNumber: r.ShipmentIdentificationNumber,
		DispatchConfirmationNumber:   r.DispatchConfirmationNumber,
	}
	for _, p := range r.PackagesResult {
		out.PackagesResult.PackageResult = append(out.PackagesResult.PackageResult, PackageResult{
			Number:         p.Number,
			TrackingNumber: p.TrackingNumber,
		})
	}
	for _, img := range r.LabelImages {
		out.LabelImage = append(out.LabelImage, LabelImage{
			LabelImageFormat: img.Format,
			GraphicImage:     base64.StdEncoding.EncodeToString(img.Data),
		})
	}
	return out
}

// FromTrackingResponse is the inverse of ToTrackingResponse. Used to stub carrier replies and to
// print decoded ones.
func FromTrackingResponse(r *response.TrackingResponse) TrackShipmentResponse {
	body := TrackingResponse{Notification: fromNotifications(r.Notifications)}
	for _, a := range r.AWBs {
		item := AWBInfo{AWBNumber: a.AWBNumber, Status: Status{ActionStatus: a.Status}}
		if len(a.Events) > 0 || a.EstimatedDeliveryDate.IsSome() {
			item.ShipmentInfo = &TrackedShipment{}
			if len(a.Events) > 0 {
				item.ShipmentInfo.ShipmentEvent = &ShipmentEvents{ArrayOfShipmentEventItem: fromEvents(a.Events)}
			}
			if edd, ok := a.EstimatedDeliveryDate.Get(); ok {
				s := edd.Format(EstDeliveryLayout)
				item.ShipmentInfo.EstDlvyDate = &s
			}
		}
		if len(a.Pieces) > 0 {
			item.Pieces = &TrackedPieces{}
			for _, p := range a.Pieces {
				item.Pieces.PieceInfo.ArrayOfPieceInfoItem = append(item.Pieces.PieceInfo.ArrayOfPieceInfoItem, PieceInfo{
					PieceDetails: PieceDetails{LicensePlate: p.LicensePlate},
					PieceEvent:   PieceEvents{ArrayOfPieceEventItem: fromEvents(p.Events)},
				})
			}
		}
		body.AWBInfo.ArrayOfAWBInfoItem = append(body.AWBInfo.ArrayOfAWBInfoItem, item)
	}
	return TrackShipmentResponse{TrackingResponse: TrackingResponseRef{TrackingResponse: body}}
}

// FromDeleteResponse is the inverse of ToDeleteResponse. Used to stub carrier replies and to
// print decoded ones.
func FromDeleteResponse(r *response.ShipmentDeleteResponse) DeleteResponse {
	return DeleteResponse{
		ServiceInvocationID: r.ServiceInvocationID,
		Notification:        fromNotifications(r.Notifications),
	}
}

func fromEvents(events []response.Event) []EventItem {
	out := make([]EventItem, 0, len(events))
	for _, e := range events {
		out = append(out, EventItem{
			Date:         e.Timestamp.Format(DateLayout),
			Time:         e.Timestamp.Format(TimeLayout),
			ServiceEvent: ServiceEvent{EventCode: e.Code, Description: e.Description},
			ServiceArea:  ServiceArea{ServiceAreaCode: e.ServiceArea},
		})
	}
	return out
}

func fromNotifications(in []response.Notification) []Notification {
	out := make([]Notification, 0, len(in))
	for _, n := range in {
		out = append(out, Notification{Code: Code(n.Code), Message: n.Message})
	}
	return out
}

type stringer interface {
	String() string
}

// str converts an optional value to the pointer form used for omitempty elements.
func str[T stringer](o opt.Option[T]) *string {
	return opt.Map(o, func(v T) string { return v.String() }).Ptr()
}
