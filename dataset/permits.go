package dataset

// portalPermits holds permit rows scraped from municipal building portals,
// keyed by town slug. Dates are as published (M/D/YY). Only towns with a
// scrapeable portal appear here.
var portalPermits = map[string][]PortalPermit{
	"boston": {
		{Permit: "ALT-1482201", Address: "44 Ruthven St, Dorchester", Applied: "1/9/25", Issued: "3/14/25", Status: "Issued", Cost: 182000, SqFt: 640, Type: "Basement Conversion", Contractor: "Harborline Builders", Notes: "Egress window added"},
		{Permit: "ALT-1483377", Address: "12 Cedar Ln, West Roxbury", Applied: "1/22/25", Issued: "4/2/25", Status: "Issued", Cost: 240000, SqFt: 720, Type: "Detached", Contractor: "Meetinghouse Homes", Notes: ""},
		{Permit: "ALT-1484190", Address: "87 Savin Hill Ave, Dorchester", Applied: "2/3/25", Issued: "3/28/25", Status: "Issued", Cost: 155000, SqFt: 510, Type: "Internal", Contractor: "Owner", Notes: "Attic unit"},
		{Permit: "ALT-1485522", Address: "230 Poplar St, Roslindale", Applied: "2/18/25", Issued: "", Status: "In Review", Cost: 265000, SqFt: 800, Type: "Detached", Contractor: "Backlot ADU Co", Notes: ""},
		{Permit: "ALT-1486013", Address: "9 Farrington Ave, Allston", Applied: "3/4/25", Issued: "5/30/25", Status: "Issued", Cost: 198000, SqFt: 590, Type: "Attached", Contractor: "BrightBuild", Notes: ""},
		{Permit: "ALT-1486944", Address: "61 Train St, Dorchester", Applied: "3/19/25", Issued: "", Status: "Denied", Cost: 120000, SqFt: 450, Type: "Basement Conversion", Contractor: "Owner", Notes: "Ceiling height below code"},
		{Permit: "ALT-1487810", Address: "145 Walworth St, Roslindale", Applied: "4/7/25", Issued: "6/20/25", Status: "Issued", Cost: 231000, SqFt: 690, Type: "Detached", Contractor: "Meetinghouse Homes", Notes: ""},
		{Permit: "ALT-1488662", Address: "28 Montvale St, Roslindale", Applied: "4/24/25", Issued: "", Status: "In Review", Cost: 176000, SqFt: 560, Type: "Internal", Contractor: "Owner", Notes: ""},
		{Permit: "ALT-1489315", Address: "310 Bennington St, East Boston", Applied: "5/8/25", Issued: "7/11/25", Status: "Issued", Cost: 204000, SqFt: 610, Type: "Attached", Contractor: "Harborline Builders", Notes: ""},
		{Permit: "ALT-1490488", Address: "77 Wellsmere Rd, Roslindale", Applied: "6/2/25", Issued: "", Status: "In Review", Cost: 252000, SqFt: 740, Type: "Detached", Contractor: "Backlot ADU Co", Notes: "Awaiting zoning sign-off"},
	},
	"newton": {
		{Permit: "25-0412", Address: "15 Bowen St, Newton Centre", Applied: "1/16/25", Issued: "3/21/25", Status: "Issued", Cost: 310000, SqFt: 780, Type: "Detached", Contractor: "Garden City Carpentry", Notes: ""},
		{Permit: "25-0538", Address: "204 Lowell Ave, Newtonville", Applied: "2/11/25", Issued: "4/18/25", Status: "Issued", Cost: 189000, SqFt: 540, Type: "Attached", Contractor: "Owner", Notes: ""},
		{Permit: "25-0702", Address: "31 Kewadin Rd, Waban", Applied: "3/6/25", Issued: "", Status: "In Review", Cost: 340000, SqFt: 850, Type: "Detached", Contractor: "Garden City Carpentry", Notes: "Stormwater review"},
		{Permit: "25-0815", Address: "88 Clark St, Nonantum", Applied: "3/27/25", Issued: "5/23/25", Status: "Issued", Cost: 142000, SqFt: 480, Type: "Internal", Contractor: "Owner", Notes: "Garage conversion"},
		{Permit: "25-0990", Address: "7 Hartman Rd, Newton Highlands", Applied: "4/22/25", Issued: "", Status: "Denied", Cost: 265000, SqFt: 900, Type: "Detached", Contractor: "Maple & Main", Notes: "Lot below district minimum"},
		{Permit: "25-1104", Address: "56 Prairie Ave, Auburndale", Applied: "5/13/25", Issued: "7/25/25", Status: "Issued", Cost: 228000, SqFt: 660, Type: "Attached", Contractor: "Maple & Main", Notes: ""},
	},
	"revere": {
		{Permit: "B25-118", Address: "24 Thornton St", Applied: "1/28/25", Issued: "3/18/25", Status: "Issued", Cost: 134000, SqFt: 500, Type: "Basement Conversion", Contractor: "Owner", Notes: ""},
		{Permit: "B25-167", Address: "310 Mountain Ave", Applied: "2/20/25", Issued: "4/29/25", Status: "Issued", Cost: 172000, SqFt: 560, Type: "Attached", Contractor: "Beachmont Builders", Notes: ""},
		{Permit: "B25-203", Address: "18 Dedham St", Applied: "3/12/25", Issued: "", Status: "In Review", Cost: 210000, SqFt: 640, Type: "Detached", Contractor: "Beachmont Builders", Notes: ""},
		{Permit: "B25-251", Address: "95 Crescent Ave", Applied: "4/3/25", Issued: "6/6/25", Status: "Issued", Cost: 149000, SqFt: 520, Type: "Internal", Contractor: "Owner", Notes: ""},
		{Permit: "B25-289", Address: "42 Sargent St", Applied: "4/30/25", Issued: "", Status: "In Review", Cost: 188000, SqFt: 600, Type: "Attached", Contractor: "North Shore ADU", Notes: ""},
	},
}
