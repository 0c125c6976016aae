// =============================================================================
// Workday Report Flattener - Built-in Report Declarations
// =============================================================================
//
// One declaration per Workday report feed. Column names and extraction
// paths follow the downstream ingest contract for each feed; the raw files
// arrive with a .csv extension even though their content is namespaced XML,
// which is how Workday's scheduled delivery names them.
//
// =============================================================================

package schema

// BuiltIn returns a registry preloaded with every report type the process
// knows how to flatten.
func BuiltIn() (*Registry, error) {
	reg := NewRegistry()
	for _, r := range []*Report{
		costingAllocationsDaily(),
		positionMaster(),
		positionCompensation(),
		worktagGrant(),
		worktagProgram(),
	} {
		if err := reg.Register(r); err != nil {
			return nil, err
		}
	}
	return reg, nil
}

// =============================================================================
// COSTING ALLOCATIONS (DAILY)
// =============================================================================

// costingAllocationsDaily is the position funding actuals feed: one entry
// per worker, expanded to one row per allocation line.
func costingAllocationsDaily() *Report {
	return &Report{
		Name:         "costing_allocations_daily",
		Namespace:    "urn:com.workday.report/RPT-INTF-S111B-(NSHE)_CSN_PositionFunding-Actuals",
		EntryElement: "Report_Entry",
		InputFile:    "position_costing_allocations_daily.csv",
		OutputFile:   "parsed_position_costing_allocations_daily.csv",
		Columns: []string{
			"Position_ID", "Employee_ID", "Active_Status", "Worker_Company_ID",
			"CF-FormattedEffectiveDate", "FYStartDate", "FYEndDate",
			"CF-Ledger", "Earning_Code", "CF-WorktagDriverCode-Combo", "CF-WorktagDriverCode",
			"CAllocation_StartDate", "Distribution_Percent", "Costing_Company_Reference_ID", "Allocation_WID",
			"Updated_Date",
		},
		ProvenanceColumn: "Updated_Date",
		Fields: []FieldRule{
			text("Position_ID", "Worker", "Position_ID"),
			text("Employee_ID", "Worker", "Employee_ID"),
			text("Active_Status", "Worker", "Active_Status"),
			text("Worker_Company_ID", "Worker", "Company_ID"),
			text("CF-FormattedEffectiveDate", "Worker", "CF-FormattedEffectiveDate"),
			text("FYStartDate", "Worker", "FYStartDate"),
			text("FYEndDate", "Worker", "FYEndDate"),
		},
		Expansion: &ExpansionRule{
			Element: "AllocationDetails",
			Fields: []FieldRule{
				text("CF-Ledger", "", "CF-Ledger"),
				typedID("Earning_Code", "EarningType", "Earning_Code"),
				text("CF-WorktagDriverCode-Combo", "", "CF-WorktagDriverCode-Combo"),
				text("CF-WorktagDriverCode", "", "CF-WorktagDriverCode"),
				text("CAllocation_StartDate", "", "CAllocation_StartDate"),
				text("Distribution_Percent", "", "Distribution_Percent"),
				typedID("Costing_Company_Reference_ID", "Costing_Company", "Company_Reference_ID"),
				text("Allocation_WID", "", "WID"),
			},
		},
	}
}

// =============================================================================
// POSITION MASTER
// =============================================================================

// positionMaster is the widest feed: one row per position with no
// expansion. The repeated compensation grade profile group is collapsed
// into a single JSON column rather than multiplying rows.
func positionMaster() *Report {
	return &Report{
		Name:         "position_master",
		Namespace:    "urn:com.workday.report/RPT-INTF-S111-(NSHE)_CSN-PositionMaster",
		EntryElement: "Report_Entry",
		InputFile:    "position_master.csv",
		OutputFile:   "parsed_position_master.csv",
		Columns: []string{
			"Unit_Descriptor", "Unit_ID_WID", "Unit_ID_Organization_Reference_ID", "Unit_ID_Custom_Organization_Reference_ID",
			"PositionManagement_Position_ID", "PositionManagement_Job_Code", "PositionManagement_Position_Title",
			"PositionManagement_Open_Position_Title", "PositionManagement_FTE",
			"PositionManagement_CF_Worker_Comp_Step_Descriptor", "PositionManagement_CF_Worker_Comp_Step_ID_WID",
			"PositionManagement_CF_Worker_Comp_Step_ID_Compensation_Step_ID", "PositionManagement_CF_CompGradeRefID",
			"PositionManagement_Staffing_Status_Descriptor", "PositionManagement_Staffing_Status_ID_WID",
			"PositionManagement_Staffing_Status_ID_Staffing_Interface_Status_for_CRF_ID",
			"EmployeeID", "Cost_Center_Descriptor", "Cost_Center_ID_WID", "Cost_Center_ID_Organization_Reference_ID",
			"Cost_Center_ID_Cost_Center_Reference_ID", "CF_CostCenterID",
			"Worker_Is_Classified", "Worker_Last_Name", "Worker_First_Name", "Worker_Work_Email", "Worker_BusinessTitle",
			"Worker_CF_TenureStatus", "Worker_Worker_Compensation_Grade_Descriptor",
			"Worker_Worker_Compensation_Grade_ID_WID", "Worker_Worker_Compensation_Grade_ID_Compensation_Grade_ID",
			"Worker_CF_Worker_Comp_Grade_WID", "Worker_Worker_Compensation_Grade_Profile_Descriptor",
			"Worker_Worker_Compensation_Grade_Profile_ID_WID", "Worker_Worker_Compensation_Grade_Profile_ID_Compensation_Grade_Profile_ID",
			"Worker_CF_Worker_Comp_Grade_Prof_WID", "Worker_SeniorityDate", "Worker_OriginalHireDate",
			"Worker_ContinuousServiceDate", "Worker_Eff_Date_CurrentPosition", "Worker_LastPayIncreaseDate",
			"Worker_Position_Worker_Type_Descriptor", "Worker_Position_Worker_Type_ID_WID",
			"Worker_Position_Worker_Type_ID_Employee_Type_ID", "Worker_Medicare_Flag",
			"Eligibility_Rules_Descriptor", "Eligibility_Rules_ID_WID",
			"Default_Compensation_Grade_group_Compensation_Grade_Descriptor",
			"Default_Compensation_Grade_group_Compensation_Grade_ID_WID",
			"Default_Compensation_Grade_group_Compensation_Grade_ID_Compensation_Grade_ID",
			"Default_Compensation_Grade_group_WID", "Default_Compensation_Grade_group_Profiles_Serialized",
			"Default_Compensation_Grade_Profile_group_CF_CompGradeProf_WID",
			"PositionJob_Job_Family_Group_Descriptor", "PositionJob_Job_Family_Group_ID_WID",
			"PositionJob_Job_Family_Group_ID_Job_Family_ID", "PositionJob_CF_IsWorkerEmpty",
			"PositionJob_CF_Step", "PositionJob_CF_MeritStep", "PositionJob_CF_MeritDate",
			"PositionRestrictions_RetirementCodeOld", "PositionRestrictions_Health_Insurance_Yr1_Flag",
			"PositionRestrictions_Health_Insurance_Yr2_Flag", "PositionRestrictions_Partial_Flag",
			"PositionRestrictions_Retirement_Flag", "PositionRestrictions_Workers_Comp_Flag",
			"PositionRestrictions_Personnel_Assessment_Flag", "PositionRestrictions_Unemployment_Flag",
			"PositionRestrictions_GroupInsFlag", "PositionRestrictions_Medicare_Flag_OLD",
			"PositionRestrictions_FICA_Flag", "PositionRestrictions_AG_Tort_Flag",
			"PositionRestrictions_Employee_Bond_Flag", "PositionRestrictions_Merit_Increase_Flag",
			"Retirement_Savings_Election_group_RetirementCode_Descriptor",
			"Retirement_Savings_Election_group_RetirementCode_ID_WID",
			"Retirement_Savings_Election_group_RetirementCode_ID_Defined_Contribution_Plan_ID",
			"Retirement_Savings_Election_group_RetirementCode_ID_Benefit_Plan_ID",
			"Retirement_Savings_Election_group_Employer_Contribution_Percentage",
			"Retirement_Savings_Election_group_Elected",
			"Updated_Date",
		},
		ProvenanceColumn: "Updated_Date",
		Fields: []FieldRule{
			attr("Unit_Descriptor", "Unit", "Descriptor"),
			typedID("Unit_ID_WID", "Unit", "WID"),
			typedID("Unit_ID_Organization_Reference_ID", "Unit", "Organization_Reference_ID"),
			typedID("Unit_ID_Custom_Organization_Reference_ID", "Unit", "Custom_Organization_Reference_ID"),

			text("PositionManagement_Position_ID", "PositionManagement", "Position_ID"),
			text("PositionManagement_Job_Code", "PositionManagement", "Job_Code"),
			text("PositionManagement_Position_Title", "PositionManagement", "Position_Title"),
			text("PositionManagement_Open_Position_Title", "PositionManagement", "Open_Position_Title"),
			text("PositionManagement_FTE", "PositionManagement", "FTE"),
			text("PositionManagement_CF_CompGradeRefID", "PositionManagement", "CF-CompGradeRefID"),
			attr("PositionManagement_CF_Worker_Comp_Step_Descriptor", "PositionManagement/CF-Worker_Comp_Step", "Descriptor"),
			typedID("PositionManagement_CF_Worker_Comp_Step_ID_WID", "PositionManagement/CF-Worker_Comp_Step", "WID"),
			typedID("PositionManagement_CF_Worker_Comp_Step_ID_Compensation_Step_ID", "PositionManagement/CF-Worker_Comp_Step", "Compensation_Step_ID"),
			attr("PositionManagement_Staffing_Status_Descriptor", "PositionManagement/Staffing_Status", "Descriptor"),
			typedID("PositionManagement_Staffing_Status_ID_WID", "PositionManagement/Staffing_Status", "WID"),
			typedID("PositionManagement_Staffing_Status_ID_Staffing_Interface_Status_for_CRF_ID", "PositionManagement/Staffing_Status", "Staffing_Interface_Status_for_CRF_ID"),

			text("EmployeeID", "", "EmployeeID"),

			attr("Cost_Center_Descriptor", "Cost_Center", "Descriptor"),
			typedID("Cost_Center_ID_WID", "Cost_Center", "WID"),
			typedID("Cost_Center_ID_Organization_Reference_ID", "Cost_Center", "Organization_Reference_ID"),
			typedID("Cost_Center_ID_Cost_Center_Reference_ID", "Cost_Center", "Cost_Center_Reference_ID"),
			text("CF_CostCenterID", "", "CF-CostCenterID"),

			text("Worker_Is_Classified", "Worker", "Is_Classified"),
			text("Worker_Last_Name", "Worker", "Last_Name"),
			text("Worker_First_Name", "Worker", "First_Name"),
			text("Worker_Work_Email", "Worker", "Work_Email"),
			text("Worker_BusinessTitle", "Worker", "BusinessTitle"),
			text("Worker_CF_TenureStatus", "Worker", "CF-TenureStatus"),
			text("Worker_SeniorityDate", "Worker", "SeniorityDate"),
			text("Worker_OriginalHireDate", "Worker", "OriginalHireDate"),
			text("Worker_ContinuousServiceDate", "Worker", "ContinuousServiceDate"),
			text("Worker_Eff_Date_CurrentPosition", "Worker", "Eff_Date_CurrentPosition"),
			text("Worker_LastPayIncreaseDate", "Worker", "LastPayIncreaseDate"),
			text("Worker_Medicare_Flag", "Worker", "Medicare_Flag"),
			// The underscores around the hyphen are present in the XML tags.
			text("Worker_CF_Worker_Comp_Grade_WID", "Worker", "CF_-_Worker_Comp_Grade_WID"),
			text("Worker_CF_Worker_Comp_Grade_Prof_WID", "Worker", "CF_-_Worker_Comp_Grade_Prof_WID"),
			attr("Worker_Worker_Compensation_Grade_Descriptor", "Worker/Worker_Compensation_Grade", "Descriptor"),
			typedID("Worker_Worker_Compensation_Grade_ID_WID", "Worker/Worker_Compensation_Grade", "WID"),
			typedID("Worker_Worker_Compensation_Grade_ID_Compensation_Grade_ID", "Worker/Worker_Compensation_Grade", "Compensation_Grade_ID"),
			attr("Worker_Worker_Compensation_Grade_Profile_Descriptor", "Worker/Worker_Compensation_Grade_Profile", "Descriptor"),
			typedID("Worker_Worker_Compensation_Grade_Profile_ID_WID", "Worker/Worker_Compensation_Grade_Profile", "WID"),
			typedID("Worker_Worker_Compensation_Grade_Profile_ID_Compensation_Grade_Profile_ID", "Worker/Worker_Compensation_Grade_Profile", "Compensation_Grade_Profile_ID"),
			attr("Worker_Position_Worker_Type_Descriptor", "Worker/Position_Worker_Type", "Descriptor"),
			typedID("Worker_Position_Worker_Type_ID_WID", "Worker/Position_Worker_Type", "WID"),
			typedID("Worker_Position_Worker_Type_ID_Employee_Type_ID", "Worker/Position_Worker_Type", "Employee_Type_ID"),

			attr("Eligibility_Rules_Descriptor", "Eligibility_Rules", "Descriptor"),
			typedID("Eligibility_Rules_ID_WID", "Eligibility_Rules", "WID"),

			text("Default_Compensation_Grade_group_WID", "Default_Compensation_Grade_group", "WID"),
			attr("Default_Compensation_Grade_group_Compensation_Grade_Descriptor", "Default_Compensation_Grade_group/Compensation_Grade", "Descriptor"),
			typedID("Default_Compensation_Grade_group_Compensation_Grade_ID_WID", "Default_Compensation_Grade_group/Compensation_Grade", "WID"),
			typedID("Default_Compensation_Grade_group_Compensation_Grade_ID_Compensation_Grade_ID", "Default_Compensation_Grade_group/Compensation_Grade", "Compensation_Grade_ID"),

			text("Default_Compensation_Grade_Profile_group_CF_CompGradeProf_WID", "Default_Compensation_Grade_Profile_group", "CF-CompGradeProf-WID"),

			text("PositionJob_CF_IsWorkerEmpty", "PositionJob", "CF-IsWorkerEmpty"),
			text("PositionJob_CF_Step", "PositionJob", "CF-Step"),
			text("PositionJob_CF_MeritStep", "PositionJob", "CF-MeritStep"),
			text("PositionJob_CF_MeritDate", "PositionJob", "CF-MeritDate"),
			attr("PositionJob_Job_Family_Group_Descriptor", "PositionJob/Job_Family_Group", "Descriptor"),
			typedID("PositionJob_Job_Family_Group_ID_WID", "PositionJob/Job_Family_Group", "WID"),
			typedID("PositionJob_Job_Family_Group_ID_Job_Family_ID", "PositionJob/Job_Family_Group", "Job_Family_ID"),

			text("PositionRestrictions_RetirementCodeOld", "PositionRestrictions", "RetirementCodeOld"),
			text("PositionRestrictions_Health_Insurance_Yr1_Flag", "PositionRestrictions", "Health_Insurance_Yr1_Flag"),
			text("PositionRestrictions_Health_Insurance_Yr2_Flag", "PositionRestrictions", "Health_Insurance_Yr2_Flag"),
			text("PositionRestrictions_Partial_Flag", "PositionRestrictions", "Partial_Flag"),
			text("PositionRestrictions_Retirement_Flag", "PositionRestrictions", "Retirement_Flag"),
			text("PositionRestrictions_Workers_Comp_Flag", "PositionRestrictions", "Workers_Comp_Flag"),
			text("PositionRestrictions_Personnel_Assessment_Flag", "PositionRestrictions", "Personnel_Assessment_Flag"),
			text("PositionRestrictions_Unemployment_Flag", "PositionRestrictions", "Unemployment_Flag"),
			text("PositionRestrictions_GroupInsFlag", "PositionRestrictions", "GroupInsFlag"),
			text("PositionRestrictions_Medicare_Flag_OLD", "PositionRestrictions", "Medicare_Flag-OLD"),
			text("PositionRestrictions_FICA_Flag", "PositionRestrictions", "FICA_Flag"),
			text("PositionRestrictions_AG_Tort_Flag", "PositionRestrictions", "AG_Tort_Flag"),
			text("PositionRestrictions_Employee_Bond_Flag", "PositionRestrictions", "Employee_Bond_Flag"),
			text("PositionRestrictions_Merit_Increase_Flag", "PositionRestrictions", "Merit_Increase_Flag"),

			text("Retirement_Savings_Election_group_Employer_Contribution_Percentage", "Retirement_Savings_Election_group", "Employer_Contribution_Percentage"),
			text("Retirement_Savings_Election_group_Elected", "Retirement_Savings_Election_group", "Elected"),
			attr("Retirement_Savings_Election_group_RetirementCode_Descriptor", "Retirement_Savings_Election_group/RetirementCode", "Descriptor"),
			typedID("Retirement_Savings_Election_group_RetirementCode_ID_WID", "Retirement_Savings_Election_group/RetirementCode", "WID"),
			typedID("Retirement_Savings_Election_group_RetirementCode_ID_Defined_Contribution_Plan_ID", "Retirement_Savings_Election_group/RetirementCode", "Defined_Contribution_Plan_ID"),
			typedID("Retirement_Savings_Election_group_RetirementCode_ID_Benefit_Plan_ID", "Retirement_Savings_Election_group/RetirementCode", "Benefit_Plan_ID"),
		},
		Groups: []GroupRule{
			{
				Column:  "Default_Compensation_Grade_group_Profiles_Serialized",
				Anchor:  "Default_Compensation_Grade_group",
				Element: "Compensation_Grade_Profiles",
				Fields: []FieldRule{
					attr("Descriptor", "", "Descriptor"),
					typedID("ID_WID", "", "WID"),
					typedID("ID_Compensation_Grade_Profile_ID", "", "Compensation_Grade_Profile_ID"),
				},
			},
		},
	}
}

// =============================================================================
// POSITION COMPENSATION
// =============================================================================

// positionCompensation is the other-compensation feed: one entry per
// worker, expanded to one row per compensation plan assignment.
func positionCompensation() *Report {
	return &Report{
		Name:         "position_compensation",
		Namespace:    "urn:com.workday.report/RPT-INTF-S111-CSN-PositionOtherCompensation",
		EntryElement: "Report_Entry",
		InputFile:    "position_compensation.csv",
		OutputFile:   "parsed_position_compensation.csv",
		Columns: []string{
			"Position_ID", "Employee_ID",
			"Job_Family_Group_Descriptor", "Job_Family_Group_WID", "Job_Family_Group_Job_Family_ID",
			"CF_Staffing_Status_Descriptor", "CF_Staffing_Status_WID", "CF_Staffing_Status_Staffing_Interface_Status_for_CRF_ID",
			"CF_JobCode", "Terminated_based_on_report_date",
			"Compensation_Element_Descriptor", "Compensation_Element_WID", "Compensation_Element_Compensation_Element_ID",
			"Annualized_Amount",
			"Updated_Date",
		},
		ProvenanceColumn: "Updated_Date",
		Fields: []FieldRule{
			text("Position_ID", "Worker_group", "Position_ID"),
			text("Employee_ID", "Worker_group", "Employee_ID"),
			attr("Job_Family_Group_Descriptor", "Worker_group/Job_Family_Group", "Descriptor"),
			typedID("Job_Family_Group_WID", "Worker_group/Job_Family_Group", "WID"),
			typedID("Job_Family_Group_Job_Family_ID", "Worker_group/Job_Family_Group", "Job_Family_ID"),
			attr("CF_Staffing_Status_Descriptor", "Worker_group/CF-Staffing_Status", "Descriptor"),
			typedID("CF_Staffing_Status_WID", "Worker_group/CF-Staffing_Status", "WID"),
			typedID("CF_Staffing_Status_Staffing_Interface_Status_for_CRF_ID", "Worker_group/CF-Staffing_Status", "Staffing_Interface_Status_for_CRF_ID"),
			text("CF_JobCode", "Worker_group", "CF-JobCode"),
			text("Terminated_based_on_report_date", "Worker_group", "Terminated__based_on_report_date_"),
		},
		Expansion: &ExpansionRule{
			Element: "Compensation_Plan_Assignments",
			Fields: []FieldRule{
				attr("Compensation_Element_Descriptor", "Compensation_Element", "Descriptor"),
				typedID("Compensation_Element_WID", "Compensation_Element", "WID"),
				typedID("Compensation_Element_Compensation_Element_ID", "Compensation_Element", "Compensation_Element_ID"),
				text("Annualized_Amount", "", "Annualized_Amount"),
			},
		},
	}
}

// =============================================================================
// WORKTAG GRANT
// =============================================================================

// worktagGrant is the grant worktag dimension feed. Repeated <Worktags>
// children are routed into fund/function/unit/cost-center column groups by
// the prefix of their Descriptor attribute.
func worktagGrant() *Report {
	return &Report{
		Name:         "worktag_grant",
		Namespace:    "urn:com.workday.report/intf-s111-c04",
		EntryElement: "Report_Entry",
		InputFile:    "worktag_grant.csv",
		OutputFile:   "parsed_worktag_grant.csv",
		Columns: []string{
			"Code_Description_Descriptor", "Code_Description_WID", "Code_Description_Grant_ID",
			"Code",
			"Parent",
			"Grant_Description",
			"Grant_Cost_Center_Descriptor", "Grant_Cost_Center_WID", "Grant_Cost_Center_Organization_Reference_ID", "Grant_Cost_Center_Cost_Center_Reference_ID",
			"Included_in_Grant_Hierarchies_Descriptor", "Included_in_Grant_Hierarchies_WID", "Included_in_Grant_Hierarchies_Grant_Hierarchy_ID",
			"Institution_Hierarchy_Node_Grants_Descriptor", "Institution_Hierarchy_Node_Grants_WID", "Institution_Hierarchy_Node_Grants_Grant_Hierarchy_ID",
			"Unit_Descriptor", "Unit_WID", "Unit_Organization_Reference_ID", "Unit_Custom_Organization_Reference_ID",
			"Worktag_Fund_Descriptor", "Worktag_Fund_WID", "Worktag_Fund_ID",
			"Worktag_Function_Descriptor", "Worktag_Function_WID", "Worktag_Function_Organization_Reference_ID", "Worktag_Function_Custom_Organization_Reference_ID",
			"Worktag_Unit_Descriptor", "Worktag_Unit_WID", "Worktag_Unit_Organization_Reference_ID", "Worktag_Unit_Custom_Organization_Reference_ID",
			"Worktag_Cost_Center_Descriptor", "Worktag_Cost_Center_WID", "Worktag_Cost_Center_Organization_Reference_ID", "Worktag_Cost_Center_Cost_Center_Reference_ID",
			"Grant_Manager_Descriptor", "Grant_Manager_WID", "Grant_Manager_Employee_ID",
			"Grant_Accountant_Descriptor", "Grant_Accountant_WID", "Grant_Accountant_Employee_ID",
			"Grant_Owner_Descriptor", "Grant_Owner_WID", "Grant_Owner_Employee_ID",
			"Has_Program", "Has_Grant_Cost_Center", "Has_Program_Cost_Center",
			"Company_Descriptor", "Company_WID", "Company_Organization_Reference_ID", "Company_Company_Reference_ID",
			"Owner_Descriptor", "Owner_WID", "Owner_Employee_ID",
			"Inactive",
			"Fund_Code",
			"Function_Code",
			"Unit_Code",
			"Updated_Date",
		},
		ProvenanceColumn: "Updated_Date",
		Fields: []FieldRule{
			attr("Code_Description_Descriptor", "Code_Description", "Descriptor"),
			typedID("Code_Description_WID", "Code_Description", "WID"),
			typedID("Code_Description_Grant_ID", "Code_Description", "Grant_ID"),

			text("Code", "", "Code"),
			text("Parent", "", "Parent"),
			text("Grant_Description", "", "Grant_Description"),

			attr("Grant_Cost_Center_Descriptor", "Grant_Cost_Center", "Descriptor"),
			typedID("Grant_Cost_Center_WID", "Grant_Cost_Center", "WID"),
			typedID("Grant_Cost_Center_Organization_Reference_ID", "Grant_Cost_Center", "Organization_Reference_ID"),
			typedID("Grant_Cost_Center_Cost_Center_Reference_ID", "Grant_Cost_Center", "Cost_Center_Reference_ID"),

			attr("Included_in_Grant_Hierarchies_Descriptor", "Included_in_Grant_Hierarchies", "Descriptor"),
			typedID("Included_in_Grant_Hierarchies_WID", "Included_in_Grant_Hierarchies", "WID"),
			typedID("Included_in_Grant_Hierarchies_Grant_Hierarchy_ID", "Included_in_Grant_Hierarchies", "Grant_Hierarchy_ID"),

			attr("Institution_Hierarchy_Node_Grants_Descriptor", "Institution_Hierarchy_Node_-_Grants", "Descriptor"),
			typedID("Institution_Hierarchy_Node_Grants_WID", "Institution_Hierarchy_Node_-_Grants", "WID"),
			typedID("Institution_Hierarchy_Node_Grants_Grant_Hierarchy_ID", "Institution_Hierarchy_Node_-_Grants", "Grant_Hierarchy_ID"),

			attr("Unit_Descriptor", "Unit", "Descriptor"),
			typedID("Unit_WID", "Unit", "WID"),
			typedID("Unit_Organization_Reference_ID", "Unit", "Organization_Reference_ID"),
			typedID("Unit_Custom_Organization_Reference_ID", "Unit", "Custom_Organization_Reference_ID"),

			attr("Grant_Manager_Descriptor", "Grant_Manager", "Descriptor"),
			typedID("Grant_Manager_WID", "Grant_Manager", "WID"),
			typedID("Grant_Manager_Employee_ID", "Grant_Manager", "Employee_ID"),

			attr("Grant_Accountant_Descriptor", "Grant_Accountant", "Descriptor"),
			typedID("Grant_Accountant_WID", "Grant_Accountant", "WID"),
			typedID("Grant_Accountant_Employee_ID", "Grant_Accountant", "Employee_ID"),

			attr("Grant_Owner_Descriptor", "Grant_Owner", "Descriptor"),
			typedID("Grant_Owner_WID", "Grant_Owner", "WID"),
			typedID("Grant_Owner_Employee_ID", "Grant_Owner", "Employee_ID"),

			text("Has_Program", "", "Has_Program"),
			text("Has_Grant_Cost_Center", "", "Has_Grant_Cost_Center"),
			text("Has_Program_Cost_Center", "", "Has_Program_Cost_Center"),

			attr("Company_Descriptor", "Company", "Descriptor"),
			typedID("Company_WID", "Company", "WID"),
			typedID("Company_Organization_Reference_ID", "Company", "Organization_Reference_ID"),
			typedID("Company_Company_Reference_ID", "Company", "Company_Reference_ID"),

			attr("Owner_Descriptor", "Owner", "Descriptor"),
			typedID("Owner_WID", "Owner", "WID"),
			typedID("Owner_Employee_ID", "Owner", "Employee_ID"),

			text("Inactive", "", "Inactive"),
			text("Fund_Code", "", "Fund_group/Fund_Code"),
			text("Function_Code", "", "Function_group/Function_Code"),
			text("Unit_Code", "", "Unit_group/Unit_Code"),
		},
		Classifiers: []ClassifierRule{
			{
				Element: "Worktags",
				Attr:    "Descriptor",
				Cases: []ClassifierCase{
					{
						Prefix:           "Fund:",
						DescriptorColumn: "Worktag_Fund_Descriptor",
						Fields: []FieldRule{
							typedID("Worktag_Fund_WID", "", "WID"),
							typedID("Worktag_Fund_ID", "", "Fund_ID"),
						},
					},
					{
						Prefix:           "Function:",
						DescriptorColumn: "Worktag_Function_Descriptor",
						Fields: []FieldRule{
							typedID("Worktag_Function_WID", "", "WID"),
							typedID("Worktag_Function_Organization_Reference_ID", "", "Organization_Reference_ID"),
							typedID("Worktag_Function_Custom_Organization_Reference_ID", "", "Custom_Organization_Reference_ID"),
						},
					},
					{
						Prefix:           "Unit:",
						DescriptorColumn: "Worktag_Unit_Descriptor",
						Fields: []FieldRule{
							typedID("Worktag_Unit_WID", "", "WID"),
							typedID("Worktag_Unit_Organization_Reference_ID", "", "Organization_Reference_ID"),
							typedID("Worktag_Unit_Custom_Organization_Reference_ID", "", "Custom_Organization_Reference_ID"),
						},
					},
					{
						Prefix:           "Cost Center:",
						DescriptorColumn: "Worktag_Cost_Center_Descriptor",
						Fields: []FieldRule{
							typedID("Worktag_Cost_Center_WID", "", "WID"),
							typedID("Worktag_Cost_Center_Organization_Reference_ID", "", "Organization_Reference_ID"),
							typedID("Worktag_Cost_Center_Cost_Center_Reference_ID", "", "Cost_Center_Reference_ID"),
						},
					},
				},
			},
		},
	}
}

// =============================================================================
// WORKTAG PROGRAM
// =============================================================================

// worktagProgram is the program worktag dimension feed, one row per entry.
func worktagProgram() *Report {
	return &Report{
		Name:         "worktag_program",
		Namespace:    "urn:com.workday.report/intf-s111-c04",
		EntryElement: "Report_Entry",
		InputFile:    "worktag_program.csv",
		OutputFile:   "parsed_worktag_program.csv",
		Columns: []string{
			"Code_Description", "Cost_Center_Parent", "Code", "Program_Name",
			"Parent_Cost_Center_Descriptor", "Parent_Cost_Center_WID", "Parent_Cost_Center_Organization_Reference_ID", "Parent_Cost_Center_Cost_Center_Reference_ID",
			"Included_in_Program_Hierarchies_Descriptor", "Included_in_Program_Hierarchies_WID", "Included_in_Program_Hierarchies_Program_Hierarchy_ID",
			"Unit_Descriptor", "Unit_WID", "Unit_Organization_Reference_ID", "Unit_Custom_Organization_Reference_ID",
			"Fund_Descriptor", "Fund_WID", "Fund_Fund_ID",
			"Related_Function_for_Program_Descriptor", "Related_Function_for_Program_WID", "Related_Function_for_Program_Organization_Reference_ID", "Related_Function_for_Program_Custom_Organization_Reference_ID",
			"Program_Manager_Descriptor", "Program_Manager_WID", "Program_Manager_Employee_ID",
			"Owner_Descriptor", "Owner_WID", "Owner_Employee_ID",
			"Inactive", "Fund_Code", "Function_Code", "Unit_Code",
			"Updated_Date",
		},
		ProvenanceColumn: "Updated_Date",
		Fields: []FieldRule{
			text("Code_Description", "", "Code_Description"),
			text("Cost_Center_Parent", "", "Cost_Center_group/Parent"),
			text("Code", "", "Code"),
			text("Program_Name", "", "Program_Name"),

			attr("Parent_Cost_Center_Descriptor", "Parent_Cost_Center", "Descriptor"),
			typedID("Parent_Cost_Center_WID", "Parent_Cost_Center", "WID"),
			typedID("Parent_Cost_Center_Organization_Reference_ID", "Parent_Cost_Center", "Organization_Reference_ID"),
			typedID("Parent_Cost_Center_Cost_Center_Reference_ID", "Parent_Cost_Center", "Cost_Center_Reference_ID"),

			attr("Included_in_Program_Hierarchies_Descriptor", "Included_in_Program_Hierarchies", "Descriptor"),
			typedID("Included_in_Program_Hierarchies_WID", "Included_in_Program_Hierarchies", "WID"),
			typedID("Included_in_Program_Hierarchies_Program_Hierarchy_ID", "Included_in_Program_Hierarchies", "Program_Hierarchy_ID"),

			attr("Unit_Descriptor", "Unit", "Descriptor"),
			typedID("Unit_WID", "Unit", "WID"),
			typedID("Unit_Organization_Reference_ID", "Unit", "Organization_Reference_ID"),
			typedID("Unit_Custom_Organization_Reference_ID", "Unit", "Custom_Organization_Reference_ID"),

			attr("Fund_Descriptor", "Fund", "Descriptor"),
			typedID("Fund_WID", "Fund", "WID"),
			typedID("Fund_Fund_ID", "Fund", "Fund_ID"),

			attr("Related_Function_for_Program_Descriptor", "Related_Function_for_Program", "Descriptor"),
			typedID("Related_Function_for_Program_WID", "Related_Function_for_Program", "WID"),
			typedID("Related_Function_for_Program_Organization_Reference_ID", "Related_Function_for_Program", "Organization_Reference_ID"),
			typedID("Related_Function_for_Program_Custom_Organization_Reference_ID", "Related_Function_for_Program", "Custom_Organization_Reference_ID"),

			attr("Program_Manager_Descriptor", "Program_Manager", "Descriptor"),
			typedID("Program_Manager_WID", "Program_Manager", "WID"),
			typedID("Program_Manager_Employee_ID", "Program_Manager", "Employee_ID"),

			attr("Owner_Descriptor", "Owner", "Descriptor"),
			typedID("Owner_WID", "Owner", "WID"),
			typedID("Owner_Employee_ID", "Owner", "Employee_ID"),

			text("Inactive", "", "Inactive"),
			text("Fund_Code", "", "Fund_group/Fund_Code"),
			text("Function_Code", "", "Function_group/Function_Code"),
			text("Unit_Code", "", "Unit_group/Unit_Code"),
		},
	}
}

// =============================================================================
// DECLARATION HELPERS
// =============================================================================

// text declares a rule taking the text of the element at anchor/path.
func text(column, anchor, path string) FieldRule {
	return FieldRule{Column: column, Anchor: anchor, Path: path, Kind: Text}
}

// attr declares a rule taking a namespaced attribute of the anchor element.
func attr(column, anchor, name string) FieldRule {
	return FieldRule{Column: column, Anchor: anchor, Kind: Attribute, Attr: name}
}

// typedID declares a rule scanning the anchor's <ID> children for the
// requested type value.
func typedID(column, anchor, typeValue string) FieldRule {
	return FieldRule{Column: column, Anchor: anchor, Kind: TypedID, TypeValue: typeValue}
}
