package engine

// transitionsTable is the complete set of legal moves. At most one rule may
// exist per (From, Event) pair; New rejects the table otherwise.
var transitionsTable = []Rule{
	// Init
	{From: StateInit, Event: EvScaleTare, To: StateInit},
	{From: StateInit, Event: EvScaleDecrement, To: StateInit},
	{From: StateInit, Event: EvScaleRelease, To: StateInit},
	{From: StateInit, Event: EvScaleIncrement, To: StatePlateWaiting},
	{From: StateInit, Event: EvSave, To: StateSaveCheck},
	{From: StateInit, Event: EvError, To: StateError},

	// PlateWaiting: container on the scale, no group yet
	{From: StatePlateWaiting, Event: EvScaleIncrement, To: StatePlateWaiting},
	{From: StatePlateWaiting, Event: EvScaleDecrement, To: StatePlateWaiting},
	{From: StatePlateWaiting, Event: EvScaleRelease, To: StateInit},
	{From: StatePlateWaiting, Event: EvGroupA, To: StateGroupChosen},
	{From: StatePlateWaiting, Event: EvGroupB, To: StateGroupChosen},
	{From: StatePlateWaiting, Event: EvBarcode, To: StateBarcodeReading},
	{From: StatePlateWaiting, Event: EvError, To: StateError},

	// GroupChosen
	{From: StateGroupChosen, Event: EvScaleRelease, To: StateInit},
	{From: StateGroupChosen, Event: EvScaleDecrement, To: StateGroupChosen},
	{From: StateGroupChosen, Event: EvScaleTare, To: StateGroupChosen},
	{From: StateGroupChosen, Event: EvGroupA, To: StateGroupChosen},
	{From: StateGroupChosen, Event: EvGroupB, To: StateGroupChosen},
	{From: StateGroupChosen, Event: EvRaw, To: StateRaw},
	{From: StateGroupChosen, Event: EvCooked, To: StateCooked},
	{From: StateGroupChosen, Event: EvBarcode, To: StateBarcodeReading},
	{From: StateGroupChosen, Event: EvAddPlate, To: StateAddCheck},
	{From: StateGroupChosen, Event: EvDeletePlate, To: StateDeleteCheck},
	{From: StateGroupChosen, Event: EvSave, To: StateSaveCheck},
	{From: StateGroupChosen, Event: EvScaleIncrement, To: StateError, Dismiss: DismissByEvent},
	{From: StateGroupChosen, Event: EvError, To: StateError},

	// BarcodeReading
	{From: StateBarcodeReading, Event: EvBarcodeRead, To: StateBarcodeSearching},
	{From: StateBarcodeReading, Event: EvWarnNoConnectivity, To: StateWarning},
	{From: StateBarcodeReading, Event: EvWarnBarcodeNotRead, To: StateWarning},
	{From: StateBarcodeReading, Event: EvWarnNetworkTimeout, To: StateWarning},
	{From: StateBarcodeReading, Event: EvGroupA, To: StateGroupChosen},
	{From: StateBarcodeReading, Event: EvGroupB, To: StateGroupChosen},
	{From: StateBarcodeReading, Event: EvRaw, To: StateCancel},
	{From: StateBarcodeReading, Event: EvCooked, To: StateCancel},
	{From: StateBarcodeReading, Event: EvAddPlate, To: StateCancel},
	{From: StateBarcodeReading, Event: EvDeletePlate, To: StateCancel},
	{From: StateBarcodeReading, Event: EvSave, To: StateCancel},
	{From: StateBarcodeReading, Event: EvBarcode, To: StateCancel},
	{From: StateBarcodeReading, Event: EvScaleRelease, To: StateInit},
	{From: StateBarcodeReading, Event: EvCancel, To: StateCancel},
	{From: StateBarcodeReading, Event: EvScaleTare, To: StateBarcodeReading},
	{From: StateBarcodeReading, Event: EvError, To: StateError},

	// BarcodeSearching
	{From: StateBarcodeSearching, Event: EvProductFound, To: StateBarcodeConfirm},
	{From: StateBarcodeSearching, Event: EvWarnProductNotFound, To: StateWarning},
	{From: StateBarcodeSearching, Event: EvWarnNetworkTimeout, To: StateWarning},
	{From: StateBarcodeSearching, Event: EvWarnNoConnectivity, To: StateWarning},
	{From: StateBarcodeSearching, Event: EvScaleRelease, To: StateInit},
	{From: StateBarcodeSearching, Event: EvCancel, To: StateCancel},
	{From: StateBarcodeSearching, Event: EvScaleTare, To: StateBarcodeSearching},
	{From: StateBarcodeSearching, Event: EvError, To: StateError},

	// BarcodeConfirm
	{From: StateBarcodeConfirm, Event: EvBarcode, To: StateBarcodeGroup},
	{From: StateBarcodeConfirm, Event: EvGroupA, To: StateGroupChosen},
	{From: StateBarcodeConfirm, Event: EvGroupB, To: StateGroupChosen},
	{From: StateBarcodeConfirm, Event: EvRaw, To: StateCancel},
	{From: StateBarcodeConfirm, Event: EvCooked, To: StateCancel},
	{From: StateBarcodeConfirm, Event: EvAddPlate, To: StateCancel},
	{From: StateBarcodeConfirm, Event: EvDeletePlate, To: StateCancel},
	{From: StateBarcodeConfirm, Event: EvSave, To: StateCancel},
	{From: StateBarcodeConfirm, Event: EvCancel, To: StateCancel},
	{From: StateBarcodeConfirm, Event: EvScaleRelease, To: StateInit},
	{From: StateBarcodeConfirm, Event: EvError, To: StateError},

	// BarcodeGroup: product chosen as group
	{From: StateBarcodeGroup, Event: EvScaleRelease, To: StateInit},
	{From: StateBarcodeGroup, Event: EvScaleDecrement, To: StateBarcodeGroup},
	{From: StateBarcodeGroup, Event: EvScaleTare, To: StateBarcodeGroup},
	{From: StateBarcodeGroup, Event: EvScaleIncrement, To: StateWeighed},
	{From: StateBarcodeGroup, Event: EvRaw, To: StateRaw},
	{From: StateBarcodeGroup, Event: EvCooked, To: StateCooked},
	{From: StateBarcodeGroup, Event: EvGroupA, To: StateGroupChosen},
	{From: StateBarcodeGroup, Event: EvGroupB, To: StateGroupChosen},
	{From: StateBarcodeGroup, Event: EvBarcode, To: StateBarcodeReading},
	{From: StateBarcodeGroup, Event: EvAddPlate, To: StateAddCheck},
	{From: StateBarcodeGroup, Event: EvDeletePlate, To: StateDeleteCheck},
	{From: StateBarcodeGroup, Event: EvSave, To: StateSaveCheck},
	{From: StateBarcodeGroup, Event: EvError, To: StateError},

	// Raw
	{From: StateRaw, Event: EvScaleRelease, To: StateInit},
	{From: StateRaw, Event: EvScaleDecrement, To: StateRaw},
	{From: StateRaw, Event: EvScaleTare, To: StateRaw},
	{From: StateRaw, Event: EvRaw, To: StateRaw},
	{From: StateRaw, Event: EvCooked, To: StateCooked},
	{From: StateRaw, Event: EvScaleIncrement, To: StateWeighed},
	{From: StateRaw, Event: EvGroupA, To: StateGroupChosen},
	{From: StateRaw, Event: EvGroupB, To: StateGroupChosen},
	{From: StateRaw, Event: EvBarcode, To: StateBarcodeReading},
	{From: StateRaw, Event: EvAddPlate, To: StateAddCheck},
	{From: StateRaw, Event: EvDeletePlate, To: StateDeleteCheck},
	{From: StateRaw, Event: EvSave, To: StateSaveCheck},
	{From: StateRaw, Event: EvError, To: StateError},

	// Cooked
	{From: StateCooked, Event: EvScaleRelease, To: StateInit},
	{From: StateCooked, Event: EvScaleDecrement, To: StateCooked},
	{From: StateCooked, Event: EvScaleTare, To: StateCooked},
	{From: StateCooked, Event: EvCooked, To: StateCooked},
	{From: StateCooked, Event: EvRaw, To: StateRaw},
	{From: StateCooked, Event: EvScaleIncrement, To: StateWeighed},
	{From: StateCooked, Event: EvGroupA, To: StateGroupChosen},
	{From: StateCooked, Event: EvGroupB, To: StateGroupChosen},
	{From: StateCooked, Event: EvBarcode, To: StateBarcodeReading},
	{From: StateCooked, Event: EvAddPlate, To: StateAddCheck},
	{From: StateCooked, Event: EvDeletePlate, To: StateDeleteCheck},
	{From: StateCooked, Event: EvSave, To: StateSaveCheck},
	{From: StateCooked, Event: EvError, To: StateError},

	// Weighed
	{From: StateWeighed, Event: EvScaleRelease, To: StateInit},
	{From: StateWeighed, Event: EvScaleIncrement, To: StateWeighed},
	{From: StateWeighed, Event: EvScaleDecrement, To: StateWeighed},
	{From: StateWeighed, Event: EvRaw, To: StateRaw},
	{From: StateWeighed, Event: EvCooked, To: StateCooked},
	{From: StateWeighed, Event: EvGroupA, To: StateGroupChosen},
	{From: StateWeighed, Event: EvGroupB, To: StateGroupChosen},
	{From: StateWeighed, Event: EvBarcode, To: StateBarcodeReading},
	{From: StateWeighed, Event: EvAddPlate, To: StateAddCheck},
	{From: StateWeighed, Event: EvDeletePlate, To: StateDeleteCheck},
	{From: StateWeighed, Event: EvSave, To: StateSaveCheck},
	{From: StateWeighed, Event: EvError, To: StateError},

	// AddCheck: waiting for the add-plate confirmation
	{From: StateAddCheck, Event: EvAddPlate, To: StateAdded},
	{From: StateAddCheck, Event: EvGroupA, To: StateCancel},
	{From: StateAddCheck, Event: EvGroupB, To: StateCancel},
	{From: StateAddCheck, Event: EvRaw, To: StateCancel},
	{From: StateAddCheck, Event: EvCooked, To: StateCancel},
	{From: StateAddCheck, Event: EvDeletePlate, To: StateCancel},
	{From: StateAddCheck, Event: EvSave, To: StateCancel},
	{From: StateAddCheck, Event: EvBarcode, To: StateCancel},
	{From: StateAddCheck, Event: EvCancel, To: StateCancel},
	{From: StateAddCheck, Event: EvError, To: StateError},

	// Added
	{From: StateAdded, Event: EvScaleTare, To: StateAdded},
	{From: StateAdded, Event: EvScaleDecrement, To: StateAdded},
	{From: StateAdded, Event: EvScaleIncrement, To: StateAdded},
	{From: StateAdded, Event: EvScaleRelease, To: StateInit},
	{From: StateAdded, Event: EvWarnPlateEmpty, To: StateWarning},
	{From: StateAdded, Event: EvError, To: StateError},

	// DeleteCheck
	{From: StateDeleteCheck, Event: EvDeletePlate, To: StateDeleted},
	{From: StateDeleteCheck, Event: EvGroupA, To: StateCancel},
	{From: StateDeleteCheck, Event: EvGroupB, To: StateCancel},
	{From: StateDeleteCheck, Event: EvRaw, To: StateCancel},
	{From: StateDeleteCheck, Event: EvCooked, To: StateCancel},
	{From: StateDeleteCheck, Event: EvAddPlate, To: StateCancel},
	{From: StateDeleteCheck, Event: EvSave, To: StateCancel},
	{From: StateDeleteCheck, Event: EvBarcode, To: StateCancel},
	{From: StateDeleteCheck, Event: EvCancel, To: StateCancel},
	{From: StateDeleteCheck, Event: EvError, To: StateError},

	// Deleted
	{From: StateDeleted, Event: EvScaleTare, To: StateDeleted},
	{From: StateDeleted, Event: EvScaleDecrement, To: StateDeleted},
	{From: StateDeleted, Event: EvScaleIncrement, To: StateDeleted},
	{From: StateDeleted, Event: EvScaleRelease, To: StateInit},
	{From: StateDeleted, Event: EvWarnNothingToDelete, To: StateWarning},
	{From: StateDeleted, Event: EvError, To: StateError},

	// SaveCheck
	{From: StateSaveCheck, Event: EvSave, To: StateSaved},
	{From: StateSaveCheck, Event: EvGroupA, To: StateCancel},
	{From: StateSaveCheck, Event: EvGroupB, To: StateCancel},
	{From: StateSaveCheck, Event: EvRaw, To: StateCancel},
	{From: StateSaveCheck, Event: EvCooked, To: StateCancel},
	{From: StateSaveCheck, Event: EvAddPlate, To: StateCancel},
	{From: StateSaveCheck, Event: EvDeletePlate, To: StateCancel},
	{From: StateSaveCheck, Event: EvBarcode, To: StateCancel},
	{From: StateSaveCheck, Event: EvCancel, To: StateCancel},
	{From: StateSaveCheck, Event: EvError, To: StateError},

	// Saved
	{From: StateSaved, Event: EvScaleTare, To: StateSaved},
	{From: StateSaved, Event: EvScaleDecrement, To: StateSaved},
	{From: StateSaved, Event: EvScaleIncrement, To: StateSaved},
	{From: StateSaved, Event: EvScaleRelease, To: StateInit},
	{From: StateSaved, Event: EvGoToInit, To: StateInit},
	{From: StateSaved, Event: EvWarnMealEmpty, To: StateWarning},
	{From: StateSaved, Event: EvWarnStorageWrite, To: StateWarning},
	{From: StateSaved, Event: EvError, To: StateError},

	// Maintenance
	{From: StateDeleteLogCheck, Event: EvDeleteLog, To: StateDeleteLogDone},
	{From: StateDeleteLogCheck, Event: EvGoToInit, To: StateInit},
	{From: StateDeleteLogCheck, Event: EvGoToPlateWaiting, To: StatePlateWaiting},
	{From: StateDeleteLogCheck, Event: EvGoToGroupChosen, To: StateGroupChosen},
	{From: StateDeleteLogCheck, Event: EvGoToBarcodeGroup, To: StateBarcodeGroup},
	{From: StateDeleteLogCheck, Event: EvGoToRaw, To: StateRaw},
	{From: StateDeleteLogCheck, Event: EvGoToCooked, To: StateCooked},
	{From: StateDeleteLogCheck, Event: EvGoToWeighed, To: StateWeighed},
	{From: StateDeleteLogCheck, Event: EvError, To: StateError},
	{From: StateDeleteLogDone, Event: EvGoToInit, To: StateInit},
	{From: StateDeleteLogDone, Event: EvError, To: StateError},

	// UploadPending: boot with meals not yet uploaded
	{From: StateUploadPending, Event: EvGoToInit, To: StateInit},
	{From: StateUploadPending, Event: EvError, To: StateError},

	// Error: resumes the pre-error state, or cancels
	{From: StateError, Event: EvGoToInit, To: StateInit},
	{From: StateError, Event: EvGoToPlateWaiting, To: StatePlateWaiting},
	{From: StateError, Event: EvGoToGroupChosen, To: StateGroupChosen},
	{From: StateError, Event: EvGoToBarcodeGroup, To: StateBarcodeGroup},
	{From: StateError, Event: EvGoToRaw, To: StateRaw},
	{From: StateError, Event: EvGoToCooked, To: StateCooked},
	{From: StateError, Event: EvGoToWeighed, To: StateWeighed},
	{From: StateError, Event: EvGoToAddCheck, To: StateAddCheck},
	{From: StateError, Event: EvGoToAdded, To: StateAdded},
	{From: StateError, Event: EvGoToDeleteCheck, To: StateDeleteCheck},
	{From: StateError, Event: EvGoToDeleted, To: StateDeleted},
	{From: StateError, Event: EvGoToSaveCheck, To: StateSaveCheck},
	{From: StateError, Event: EvGoToSaved, To: StateSaved},
	{From: StateError, Event: EvCancel, To: StateCancel},

	// Cancel
	{From: StateCancel, Event: EvGoToInit, To: StateInit},
	{From: StateCancel, Event: EvGoToPlateWaiting, To: StatePlateWaiting},
	{From: StateCancel, Event: EvGoToGroupChosen, To: StateGroupChosen},
	{From: StateCancel, Event: EvGoToBarcodeGroup, To: StateBarcodeGroup},
	{From: StateCancel, Event: EvGoToRaw, To: StateRaw},
	{From: StateCancel, Event: EvGoToCooked, To: StateCooked},
	{From: StateCancel, Event: EvGoToWeighed, To: StateWeighed},
	{From: StateCancel, Event: EvDeleteLog, To: StateDeleteLogCheck},
	{From: StateCancel, Event: EvError, To: StateError},

	// Warning
	{From: StateWarning, Event: EvGoToInit, To: StateInit},
	{From: StateWarning, Event: EvGoToPlateWaiting, To: StatePlateWaiting},
	{From: StateWarning, Event: EvGoToGroupChosen, To: StateGroupChosen},
	{From: StateWarning, Event: EvGoToBarcodeGroup, To: StateBarcodeGroup},
	{From: StateWarning, Event: EvGoToRaw, To: StateRaw},
	{From: StateWarning, Event: EvGoToCooked, To: StateCooked},
	{From: StateWarning, Event: EvGoToWeighed, To: StateWeighed},
	{From: StateWarning, Event: EvError, To: StateError},
}
