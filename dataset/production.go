package dataset

// ProductionSurvey is the statewide housing-production survey, reported by
// towns independently of the permit table. Figures are applications rather
// than resolved permits, so they intentionally differ from Towns.
var ProductionSurvey = []ProductionRecord{
	{Name: "Boston", MuniID: 35, Applications: 52, Approved: 33, Rejected: 6, DetachedApps: 9, AttachedApps: 43, Lat: 42.3601, Lng: -71.0589},
	{Name: "Worcester", MuniID: 348, Applications: 38, Approved: 29, Rejected: 4, DetachedApps: 14, AttachedApps: 24, Lat: 42.2626, Lng: -71.8023},
	{Name: "Plymouth", MuniID: 239, Applications: 44, Approved: 35, Rejected: 9, DetachedApps: 31, AttachedApps: 13, Lat: 41.9584, Lng: -70.6673},
	{Name: "Cambridge", MuniID: 49, Applications: 30, Approved: 21, Rejected: 3, DetachedApps: 4, AttachedApps: 26, Lat: 42.3736, Lng: -71.1097},
	{Name: "Nantucket", MuniID: 197, Applications: 27, Approved: 27, Rejected: 0, DetachedApps: 22, AttachedApps: 5, Lat: 41.2835, Lng: -70.0995},
	{Name: "Brookline", MuniID: 46, Applications: 24, Approved: 18, Rejected: 2, DetachedApps: 5, AttachedApps: 19, Lat: 42.3318, Lng: -71.1212},
	{Name: "Quincy", MuniID: 243, Applications: 21, Approved: 16, Rejected: 2, DetachedApps: 8, AttachedApps: 13, Lat: 42.2529, Lng: -71.0023},
	{Name: "Arlington", MuniID: 10, Applications: 19, Approved: 13, Rejected: 1, DetachedApps: 6, AttachedApps: 13, Lat: 42.4154, Lng: -71.1565},
	{Name: "Newton", MuniID: 207, Applications: 17, Approved: 12, Rejected: 2, DetachedApps: 7, AttachedApps: 10, Lat: 42.3370, Lng: -71.2092},
	{Name: "Somerville", MuniID: 274, Applications: 15, Approved: 11, Rejected: 1, DetachedApps: 2, AttachedApps: 13, Lat: 42.3876, Lng: -71.0995},
	{Name: "Revere", MuniID: 248, Applications: 11, Approved: 8, Rejected: 1, DetachedApps: 3, AttachedApps: 8, Lat: 42.4084, Lng: -71.0120},
	{Name: "Barnstable", MuniID: 20, Applications: 12, Approved: 9, Rejected: 1, DetachedApps: 8, AttachedApps: 4, Lat: 41.7003, Lng: -70.3002},
	{Name: "Framingham", MuniID: 100, Applications: 10, Approved: 7, Rejected: 1, DetachedApps: 4, AttachedApps: 6, Lat: 42.2793, Lng: -71.4162},
	{Name: "Salem", MuniID: 258, Applications: 9, Approved: 6, Rejected: 1, DetachedApps: 3, AttachedApps: 6, Lat: 42.5195, Lng: -70.8967},
	{Name: "Marshfield", MuniID: 171, Applications: 7, Approved: 5, Rejected: 0, DetachedApps: 5, AttachedApps: 2, Lat: 42.0918, Lng: -70.7056},
	{Name: "Canton", MuniID: 50, Applications: 7, Approved: 4, Rejected: 1, DetachedApps: 4, AttachedApps: 3, Lat: 42.1584, Lng: -71.1448},
	{Name: "Sudbury", MuniID: 288, Applications: 6, Approved: 3, Rejected: 2, DetachedApps: 5, AttachedApps: 1, Lat: 42.3834, Lng: -71.4162},
	{Name: "Leicester", MuniID: 151, Applications: 5, Approved: 2, Rejected: 2, DetachedApps: 4, AttachedApps: 1, Lat: 42.2459, Lng: -71.9087},
	{Name: "Needham", MuniID: 199, Applications: 4, Approved: 3, Rejected: 1, DetachedApps: 2, AttachedApps: 2, Lat: 42.2809, Lng: -71.2378},
	{Name: "Duxbury", MuniID: 82, Applications: 3, Approved: 1, Rejected: 1, DetachedApps: 3, AttachedApps: 0, Lat: 42.0417, Lng: -70.6723},
	{Name: "Weston", MuniID: 333, Applications: 2, Approved: 0, Rejected: 1, DetachedApps: 2, AttachedApps: 0, Lat: 42.3668, Lng: -71.3031},
	{Name: "Upton", MuniID: 304, Applications: 0, Approved: 0, Rejected: 0, DetachedApps: 0, AttachedApps: 0},
}
