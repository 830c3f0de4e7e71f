package models

// All lists every model managed by AutoMigrate.
func All() []interface{} {
	return []interface{}{
		&BannerModel{},
		&PartnerCategoryModel{},
		&PartnerLogoModel{},
		&TeamMemberModel{},
		&ServiceModel{},
		&SocialLinkModel{},
		&JobOpeningModel{},
		&JobApplicationModel{},
		&SubscriberModel{},
		&GameModel{},
		&WebPortalModel{},
		&DigitalMarketingModel{},
		&MastheadModel{},
		&AssetModel{},
		&AdminUserModel{},
		&RevokedTokenModel{},
	}
}
