// Package report renders type metadata as the <Library> XML document and as
// the line-oriented console transcript.
//
// Document layout:
//
//	<?xml version="1.0" encoding="UTF-8"?>
//	<Library>
//		<name>LIBRARY</name>
//		<type>
//			<name>TYPE</name>
//			<modifiers>public abstract</modifiers>
//			<basetype>BASE</basetype>
//			<member>
//				<name>MEMBER</name>
//				<membertype>KIND</membertype>
//				<fieldtype>TYPE</fieldtype>
//			</member>
//		</type>
//	</Library>
package report
